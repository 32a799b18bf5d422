package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервиса и его зависимостей
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Estado del servicio"`
	Database string `json:"database,omitempty" example:"OK" doc:"Estado de la base de datos"`
}

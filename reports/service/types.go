package service

const (
	StatusOK      = "ok"
	StatusPartial = "partial"
)

type Failure struct {
	Email string `json:"correo"`
	Error string `json:"error"`
}

type SendReport struct {
	Status string    `json:"status"`
	Sent   int       `json:"correos_enviados"`
	Failed []Failure `json:"fallidos,omitempty"`
}

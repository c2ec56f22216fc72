package domain

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
)

type GenericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

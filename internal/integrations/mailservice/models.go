package mailservice

// Message письмо для внешнего почтового транспорта
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}

// ErrorResponse модель ошибки от почтового транспорта
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

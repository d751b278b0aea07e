package usuario

type createUsuarioRequest struct {
	Nome     string   `json:"nome"`
	Email    string   `json:"email"`
	Senha    string   `json:"senha"`
	Perfil   string   `json:"perfil"`
	Comissao *float64 `json:"comissao"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"usuario"`
}

package domain

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type NewAccountMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type PunishmentMailData struct {
	FullName string `json:"fullName"`
	Reason   string `json:"reason"`
	Sanction string `json:"sanction"`
	IssuedBy string `json:"issuedBy"`
}

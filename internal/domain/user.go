package domain

type User struct {
	Id       UserId
	Username Username
	Password string // bcrypt hash, never serialized
	Fullname string
}

type AddedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

type Credentials struct {
	Username Username
	Password string
	Fullname string
}

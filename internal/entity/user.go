package entity

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

type UserLoginData struct {
	ID       int64
	Username string
}

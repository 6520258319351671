package models

// Form shapes bound from POSTed HTML forms. Validation runs through the
// gin binding tags (go-playground/validator underneath); controllers turn
// the resulting validator errors into a field -> message map.

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=4,max=20"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type MovieForm struct {
	Title    string `form:"title" binding:"required"`
	Director string `form:"director" binding:"required"`
	Year     int    `form:"year" binding:"required,min=1878,max=2023"`
}

// ExtendedMovieForm holds the edit-page fields. Cast, Series and Tags are
// textareas with one entry per line; helper.SplitLines turns them into lists.
type ExtendedMovieForm struct {
	Cast        string `form:"cast"`
	Series      string `form:"series"`
	Tags        string `form:"tags"`
	Description string `form:"description"`
	VideoLink   string `form:"video_link"`
}

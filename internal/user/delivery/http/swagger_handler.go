package http

// Register godoc
// @Summary Register a new account
// @Description Create a new account with a unique username and email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string} true "Registration data"
// @Success 201 {object} object{message=string,id=int}
// @Failure 400 {object} object{error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Description Exchange email and password for a 24h JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{token=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Get the authenticated account
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=int,username=string,email=string}
// @Failure 401 {object} object{error=string}
// @Router /users/me [get]
func (h *UserHandler) GetProfileDoc() {}

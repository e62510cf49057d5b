package controllers

import (
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/services"
	"github.com/Kariqs/vkusnyashka/utils"
	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "A user with that username or email already exists."
	msgInvalidCredentials    = "Please enter a correct username and password."
	msgAccountNotActivated   = "Account not activated, check your email to activate it."
	msgInternalServerError   = "Internal server error"
	msgInvalidActivationLink = "Invalid or expired link."
	msgActivationSuccess     = "Your account has been activated. You can now log in."
	msgResetLinkSent         = "Check your email for a password reset link."
	msgUserCreated           = "Account created. Check your email to activate your account."
	msgUserNotFound          = "No account uses this email address."
	msgPasswordReset         = "Your password has been reset. You can now log in."
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (c *Controller) emailTemplate(name string) string {
	return filepath.Join(c.Config.TemplatesDir, "email", name)
}

func (c *Controller) sendAccountVerificationEmail(user models.User, activationToken string) error {
	emailData := utils.EmailData{
		Name:      user.Username,
		Message:   "Thank you for signing up! Click the button below to verify your account.",
		ActionURL: c.Config.FrontendURL + "/accounts/activate/" + url.PathEscape(activationToken),
		SiteURL:   c.Config.FrontendURL,
	}
	return c.Mailer.SendEmail(user.Email, "Account Verification", emailData, c.emailTemplate("verify_email.html"))
}

func (c *Controller) sendPasswordResetEmail(user models.User, resetToken string) error {
	emailData := utils.EmailData{
		Name:      user.Username,
		Message:   "You requested a password reset. Click the button below to reset your password.",
		ActionURL: c.Config.FrontendURL + "/accounts/password-reset/" + url.PathEscape(resetToken),
		SiteURL:   c.Config.FrontendURL,
	}
	return c.Mailer.SendEmail(user.Email, "Password Reset", emailData, c.emailTemplate("reset_password.html"))
}

func (c *Controller) message(ctx *gin.Context, status int, message string) {
	c.Render.Render(ctx, status, "message.html", gin.H{"message": message})
}

func (c *Controller) SignupForm(ctx *gin.Context) {
	c.Render.Render(ctx, http.StatusOK, "signup.html", gin.H{"form": models.SignupData{}})
}

// Signup handles user registration
func (c *Controller) Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	bindErr := ctx.ShouldBind(&signUpData)
	redisplay := signUpData
	redisplay.Password = ""
	if bindErr != nil {
		c.fail(ctx, bindingErrors(bindErr), "signup.html", gin.H{"form": redisplay})
		return
	}

	exists, err := c.Repo.UserExists(ctx.Request.Context(), signUpData.Email, signUpData.Username)
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	if exists {
		c.fail(ctx, services.FieldErrors{"__all__": msgUserAlreadyExists}, "signup.html", gin.H{"form": redisplay})
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		c.fail(ctx, errors.Annotate(err, "hashing password"), "", nil)
		return
	}

	activationToken, err := utils.GenerateCode(32)
	if err != nil {
		c.fail(ctx, errors.Annotate(err, "generating activation token"), "", nil)
		return
	}

	user := models.User{
		Username:               signUpData.Username,
		Email:                  signUpData.Email,
		Password:               hashedPassword,
		Role:                   models.RoleUser,
		Phone:                  signUpData.Phone,
		Address:                signUpData.Address,
		AccountActivationToken: activationToken,
	}
	if err := c.Repo.CreateUser(ctx.Request.Context(), &user); err != nil {
		c.fail(ctx, err, "", nil)
		return
	}

	// A failed email does not undo the signup; the user can ask for a new link.
	if err := c.sendAccountVerificationEmail(user, activationToken); err != nil {
		log.WithError(err).WithField("email", user.Email).Error("Error sending verification email")
	} else {
		log.WithField("email", user.Email).Info("Verification email sent")
	}

	c.message(ctx, http.StatusCreated, msgUserCreated)
}

func (c *Controller) LoginForm(ctx *gin.Context) {
	c.Render.Render(ctx, http.StatusOK, "login.html", gin.H{"next": ctx.Query("next")})
}

// Login checks the credentials and stores the session token in a cookie.
func (c *Controller) Login(ctx *gin.Context) {
	next := ctx.DefaultPostForm("next", ctx.Query("next"))
	var loginData models.LoginData
	if err := ctx.ShouldBind(&loginData); err != nil {
		c.fail(ctx, bindingErrors(err), "login.html", gin.H{"next": next})
		return
	}

	user, err := c.Repo.FindUserByIdentifier(ctx.Request.Context(), loginData.Identifier)
	if err != nil && !errors.Is(err, errors.NotFound) {
		c.fail(ctx, err, "", nil)
		return
	}
	if err != nil || comparePasswords(user.Password, loginData.Password) != nil {
		c.fail(ctx, services.FieldErrors{"__all__": msgInvalidCredentials}, "login.html", gin.H{"next": next})
		return
	}
	if !user.AccountActivated {
		c.fail(ctx, services.FieldErrors{"__all__": msgAccountNotActivated}, "login.html", gin.H{"next": next})
		return
	}

	tokenString, err := middlewares.IssueToken(user, c.Config.JWTSecret, c.Clock.Now())
	if err != nil {
		c.fail(ctx, errors.Annotate(err, "signing session token"), "", nil)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middlewares.TokenCookie, tokenString, int(middlewares.TokenLifetime.Seconds()), "/", "", false, true)
	if wantsJSON(ctx) {
		ctx.JSON(http.StatusOK, gin.H{"token": tokenString})
		return
	}
	target, ok := safeRedirect(ctx, next)
	if !ok {
		target = "/shop/"
	}
	ctx.Redirect(http.StatusFound, target)
}

func (c *Controller) Logout(ctx *gin.Context) {
	ctx.SetCookie(middlewares.TokenCookie, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusFound, "/shop/")
}

// ActivateAccount activates a user account using the activation token
func (c *Controller) ActivateAccount(ctx *gin.Context) {
	matched, err := c.Repo.UpdateUserWhere(ctx.Request.Context(), "account_activation_token", ctx.Param("token"), map[string]any{
		"account_activated":        true,
		"account_activation_token": "",
	})
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	if !matched {
		c.message(ctx, http.StatusBadRequest, msgInvalidActivationLink)
		return
	}
	c.message(ctx, http.StatusOK, msgActivationSuccess)
}

func (c *Controller) PasswordResetForm(ctx *gin.Context) {
	c.Render.Render(ctx, http.StatusOK, "password_reset.html", gin.H{})
}

// SendPasswordResetLink mails a reset link to the account's address.
func (c *Controller) SendPasswordResetLink(ctx *gin.Context) {
	var form struct {
		Email string `form:"email" json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		c.fail(ctx, bindingErrors(err), "password_reset.html", gin.H{})
		return
	}

	user, err := c.Repo.FindUserByIdentifier(ctx.Request.Context(), form.Email)
	if errors.Is(err, errors.NotFound) || (err == nil && user.Email != form.Email) {
		c.fail(ctx, services.FieldErrors{"email": msgUserNotFound}, "password_reset.html", gin.H{})
		return
	}
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}

	passwordResetToken, err := utils.GenerateCode(32)
	if err != nil {
		c.fail(ctx, errors.Annotate(err, "generating reset token"), "", nil)
		return
	}
	if _, err := c.Repo.UpdateUserWhere(ctx.Request.Context(), "email", user.Email, map[string]any{
		"password_reset_token": passwordResetToken,
	}); err != nil {
		c.fail(ctx, err, "", nil)
		return
	}

	if err := c.sendPasswordResetEmail(user, passwordResetToken); err != nil {
		log.WithError(err).WithField("email", user.Email).Error("Error sending password reset email")
	}
	c.message(ctx, http.StatusOK, msgResetLinkSent)
}

func (c *Controller) ResetPasswordForm(ctx *gin.Context) {
	c.Render.Render(ctx, http.StatusOK, "password_reset_confirm.html", gin.H{"token": ctx.Param("token")})
}

// ResetPassword resets a user's password using a reset token
func (c *Controller) ResetPassword(ctx *gin.Context) {
	var form struct {
		Password string `form:"password" json:"password" binding:"required,min=8"`
	}
	data := gin.H{"token": ctx.Param("token")}
	if err := ctx.ShouldBind(&form); err != nil {
		c.fail(ctx, bindingErrors(err), "password_reset_confirm.html", data)
		return
	}

	hashedPassword, err := hashPassword(form.Password)
	if err != nil {
		c.fail(ctx, errors.Annotate(err, "hashing password"), "", nil)
		return
	}

	matched, err := c.Repo.UpdateUserWhere(ctx.Request.Context(), "password_reset_token", ctx.Param("token"), map[string]any{
		"password":             hashedPassword,
		"password_reset_token": "",
	})
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	if !matched {
		c.message(ctx, http.StatusBadRequest, msgInvalidActivationLink)
		return
	}
	c.message(ctx, http.StatusOK, msgPasswordReset)
}

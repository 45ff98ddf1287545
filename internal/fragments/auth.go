package fragments

import (
	"fmt"
	"strconv"

	oerrors "github.com/fastkit/cli/internal/errors"
	"github.com/fastkit/cli/internal/placeholder"
)

// DefaultTokenExpireMinutes is the access token lifetime written into auth.py.
const DefaultTokenExpireMinutes = 30

// AuthOptions configures the auth fragment.
type AuthOptions struct {
	// TokenExpireMinutes is the JWT lifetime. Zero means the default.
	TokenExpireMinutes int
}

// Auth builds the JWT authentication fragment: auth.py, user_model_snippet.py and auth_requirements.txt.
func Auth(opts AuthOptions) (*Fragment, error) {
	minutes := opts.TokenExpireMinutes
	if minutes == 0 {
		minutes = DefaultTokenExpireMinutes
	}
	if minutes < 0 {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("token lifetime must be positive, got %d", minutes),
			"--token-expire-minutes", "")
	}

	return &Fragment{
		Name: "auth",
		Files: []File{
			{Name: "auth.py", Template: mustAsset("auth.py.tmpl")},
			{Name: "user_model_snippet.py", Template: mustAsset("user_model_snippet.py.tmpl")},
			{Name: "auth_requirements.txt", Template: mustAsset("auth_requirements.txt.tmpl")},
		},
		Table: placeholder.Table{
			"{{TOKEN_EXPIRE_MINUTES}}": strconv.Itoa(minutes),
		},
		NextSteps: []string{
			"1. Install dependencies:",
			"   pip install python-jose[cryptography] passlib[bcrypt] python-multipart",
			"2. Add User model to your models.py:",
			"   (See user_model_snippet.py for the model code)",
			"3. Include the auth router in your main.py:",
			"   from auth import router as auth_router",
			"   app.include_router(auth_router)",
			"4. Change SECRET_KEY in auth.py to a secure random string",
			"5. Run migrations to create users table",
			"",
			"Test the endpoints at http://127.0.0.1:8000/docs",
		},
	}, nil
}

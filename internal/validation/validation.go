// Package validation provides explicit per-DTO validation. Each function
// returns a field name to message map; an empty map means the input is valid.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Isaac-1-lang/BrainBridge/internal/dto"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	maxCommentLen  = 5000
	maxTitleLen    = 255
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateRegister checks the register request body.
func ValidateRegister(req dto.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegexp.MatchString(req.Email) {
		errs["email"] = "Email should be valid"
	}

	if strings.TrimSpace(req.Username) == "" {
		errs["username"] = "Username is required"
	} else if len(req.Username) < minUsernameLen || len(req.Username) > maxUsernameLen {
		errs["username"] = fmt.Sprintf("Username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}

	if req.Password == "" {
		errs["password"] = "Password is required"
	} else if len(req.Password) < minPasswordLen {
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	}

	if req.ConfirmPassword == "" {
		errs["confirm_password"] = "Confirm password is required"
	} else if req.Password != "" && req.Password != req.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}

	return errs
}

// ValidateLogin checks the login request body.
func ValidateLogin(req dto.LoginRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.EmailOrUsername) == "" {
		errs["email_or_username"] = "Email or username is required"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidateProjectCreate checks the body of a project creation call.
func ValidateProjectCreate(req dto.ProjectRequest) map[string]string {
	errs := make(map[string]string)
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(*req.Title) > maxTitleLen {
		errs["title"] = fmt.Sprintf("Title must not exceed %d characters", maxTitleLen)
	}
	return errs
}

// ValidateProjectUpdate checks the body of a project update call. All fields
// are optional, but present fields must still be well formed.
func ValidateProjectUpdate(req dto.ProjectRequest) map[string]string {
	errs := make(map[string]string)
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			errs["title"] = "Title must not be blank"
		} else if len(*req.Title) > maxTitleLen {
			errs["title"] = fmt.Sprintf("Title must not exceed %d characters", maxTitleLen)
		}
	}
	return errs
}

// ValidateComment checks the body of a comment creation call.
func ValidateComment(req dto.CommentRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "Comment content is required"
	} else if len(req.Content) > maxCommentLen {
		errs["content"] = fmt.Sprintf("Comment must be between 1 and %d characters", maxCommentLen)
	}
	if req.ProjectID == 0 {
		errs["project_id"] = "Project ID is required"
	}
	return errs
}

// ValidateCommentUpdate checks the body of a comment update call.
func ValidateCommentUpdate(req dto.CommentUpdateRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "Comment content is required"
	} else if len(req.Content) > maxCommentLen {
		errs["content"] = fmt.Sprintf("Comment must be between 1 and %d characters", maxCommentLen)
	}
	return errs
}

// ValidateAnalytics checks the body of an analytics creation call.
func ValidateAnalytics(req dto.AnalyticsRequest) map[string]string {
	errs := make(map[string]string)
	if req.ProjectID == 0 {
		errs["project_id"] = "Project ID is required"
	}
	if strings.TrimSpace(req.EventType) == "" {
		errs["event_type"] = "Event type is required"
	}
	return errs
}

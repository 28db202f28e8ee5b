package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gin-user-rpc/internal/domain"
	"gin-user-rpc/internal/feature/user"
	httpez "gin-user-rpc/internal/transport/http/ez"
	"gin-user-rpc/pkg/contract"
)

// updateUserBody is the server side of contract.UpdateUserInput. It keeps
// an absent field apart from an explicit null, which is rejected.
type updateUserBody struct {
	Name  httpez.Optional[string] `json:"name"`
	Email httpez.Optional[string] `json:"email"`
}

// UsersModule exposes the user service under /users.
type UsersModule struct{ svc *user.Service }

func NewUsersModule(svc *user.Service) *UsersModule { return &UsersModule{svc: svc} }

func (m *UsersModule) Priority() int { return 10 }

func (m *UsersModule) MountAPI(g gin.IRouter) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []contract.User]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindNone,
		Handler: func(_ *gin.Context, _ *struct{}) ([]contract.User, error) {
			us := m.svc.List()
			out := make([]contract.User, 0, len(us))
			for _, u := range us {
				out = append(out, toWire(u))
			}
			return out, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, contract.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (contract.User, error) {
			id, err := userID(c)
			if err != nil {
				return contract.User{}, err
			}
			u, err := m.svc.Get(id)
			if err != nil {
				return contract.User{}, mapErr(err)
			}
			return toWire(u), nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[contract.CreateUserInput, contract.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(_ *gin.Context, in *contract.CreateUserInput) (contract.User, error) {
			u, err := m.svc.Create(domain.NewUser{Name: in.Name, Email: in.Email})
			if err != nil {
				return contract.User{}, mapErr(err)
			}
			return toWire(u), nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[updateUserBody, contract.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *updateUserBody) (contract.User, error) {
			id, err := userID(c)
			if err != nil {
				return contract.User{}, err
			}
			u, err := m.svc.Update(id, domain.UserPatch{Name: in.Name.Ptr(), Email: in.Email.Ptr()})
			if err != nil {
				return contract.User{}, mapErr(err)
			}
			return toWire(u), nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, contract.DeleteResult]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (contract.DeleteResult, error) {
			id, err := userID(c)
			if err != nil {
				return contract.DeleteResult{}, err
			}
			if err := m.svc.Delete(id); err != nil {
				return contract.DeleteResult{}, mapErr(err)
			}
			return contract.DeleteResult{Success: true}, nil
		},
	})
}

// userID parses :id. An id that is not an integer cannot name a user.
func userID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, httpez.NotFound(domain.ErrUserNotFound.Error())
	}
	return id, nil
}

func mapErr(err error) error {
	var ve *user.ValidationError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return httpez.NotFound(domain.ErrUserNotFound.Error())
	case errors.As(err, &ve):
		issues := make([]contract.FieldIssue, 0, len(ve.Issues))
		for _, is := range ve.Issues {
			issues = append(issues, contract.FieldIssue{Field: is.Field, Message: is.Message})
		}
		return httpez.Invalid(issues, nil)
	default:
		return httpez.Internal("", err)
	}
}

func toWire(u domain.User) contract.User {
	return contract.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

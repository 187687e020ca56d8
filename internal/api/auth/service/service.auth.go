package authsvc

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	orgmodels "github.com/zougmar/hassan-elec/internal/api/org/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// OwnerStore là các thao tác trên collection users mà auth cần
type OwnerStore interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (authmodels.Owner, error)
	FindByEmail(ctx context.Context, email string) (authmodels.Owner, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (authmodels.Owner, error)
}

// ManagerStore là các thao tác trên collection managers mà auth cần
type ManagerStore interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (orgmodels.Manager, error)
	FindByEmail(ctx context.Context, email string) (orgmodels.Manager, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Manager, error)
}

// EmployeeStore là các thao tác trên collection employees mà auth cần
type EmployeeStore interface {
	FindDetailById(ctx context.Context, id primitive.ObjectID) (orgmodels.EmployeeDetail, error)
	FindByEmail(ctx context.Context, email string) (orgmodels.Employee, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (orgmodels.Employee, error)
}

// Lỗi đăng nhập
var (
	ErrMissingCredentials = common.NewValidationError("Please provide email and password", nil)
	ErrPasswordNotSet     = common.NewError(common.ErrCodeAuthCredentials, "Password not set. Contact your manager.", common.StatusUnauthorized, nil)
	ErrPrincipalNotFound  = common.NewError(common.ErrCodeAuthToken, "User not found", common.StatusUnauthorized, nil)
	ErrUnknownKind        = common.NewError(common.ErrCodeAuthToken, "Invalid token", common.StatusUnauthorized, nil)
)

// LoginResult là kết quả đăng nhập: token và thông tin người dùng
type LoginResult struct {
	Token string              `json:"token"`
	User  authmodels.UserView `json:"user"`
}

// AuthService xử lý đăng nhập và resolve principal từ token
type AuthService struct {
	tokens    *TokenService
	owners    OwnerStore
	managers  ManagerStore
	employees EmployeeStore
}

// NewAuthService tạo AuthService
func NewAuthService(tokens *TokenService, owners OwnerStore, managers ManagerStore, employees EmployeeStore) *AuthService {
	return &AuthService{tokens: tokens, owners: owners, managers: managers, employees: employees}
}

// Tokens trả về TokenService dùng chung
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Authenticate kiểm tra token rồi load principal tương ứng
func (s *AuthService) Authenticate(ctx context.Context, token string) (authmodels.Principal, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.Resolve(ctx, claims)
}

// Resolve load record theo loại principal trong claims.
// Không tìm thấy record hoặc loại lạ đều trả về lỗi 401.
func (s *AuthService) Resolve(ctx context.Context, claims *authmodels.Claims) (authmodels.Principal, error) {
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	switch claims.Kind() {
	case authmodels.KindUser:
		owner, err := s.owners.FindOneById(ctx, id)
		if err != nil {
			return nil, notFoundAsUnauthorized(err)
		}
		return &authmodels.OwnerPrincipal{Owner: owner}, nil
	case authmodels.KindManager:
		manager, err := s.managers.FindOneById(ctx, id)
		if err != nil {
			return nil, notFoundAsUnauthorized(err)
		}
		return &authmodels.ManagerPrincipal{Manager: manager}, nil
	case authmodels.KindEmployee:
		employee, err := s.employees.FindDetailById(ctx, id)
		if err != nil {
			return nil, notFoundAsUnauthorized(err)
		}
		return &authmodels.EmployeePrincipal{Employee: employee}, nil
	}
	return nil, ErrUnknownKind
}

// notFoundAsUnauthorized đổi mọi lỗi 404 (kể cả "Employee not found") thành 401
func notFoundAsUnauthorized(err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) && appErr.StatusCode == common.StatusNotFound {
		return ErrPrincipalNotFound
	}
	return err
}

// Login đăng nhập Owner hoặc Manager bằng email. Owner được tìm trước.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	owner, err := s.owners.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !utility.CheckPassword(owner.Password, password) {
			return nil, common.ErrInvalidCredentials
		}
		return s.issue(&authmodels.OwnerPrincipal{Owner: owner})
	case !errors.Is(err, common.ErrNotFound):
		return nil, err
	}

	manager, err := s.managers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utility.CheckPassword(manager.Password, password) {
		return nil, common.ErrInvalidCredentials
	}
	return s.issue(&authmodels.ManagerPrincipal{Manager: manager})
}

// EmployeeLogin đăng nhập Employee bằng emp_email
func (s *AuthService) EmployeeLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	employee, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if employee.Password == "" {
		return nil, ErrPasswordNotSet
	}
	if !utility.CheckPassword(employee.Password, password) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(&authmodels.EmployeePrincipal{Employee: orgmodels.EmployeeDetail{
		ID:         employee.ID,
		EmpName:    employee.EmpName,
		EmpEmail:   employee.EmpEmail,
		EmpContact: employee.EmpContact,
		Photo:      employee.Photo,
	}})
}

func (s *AuthService) issue(p authmodels.Principal) (*LoginResult, error) {
	token, err := s.tokens.Issue(p.ID(), p.Kind())
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}
	view := authmodels.ViewOf(p)
	view.Photo = ""
	return &LoginResult{Token: token, User: view}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

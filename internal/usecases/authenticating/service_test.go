package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pharma-sfe-api/internal/config"
	"github.com/vfg2006/pharma-sfe-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: mockUserRepo,
		cfg:      &config.Config{SecretKey: "chave-de-teste"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Senha@123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           7,
		Name:         "Rui",
		Lastname:     "Almeida",
		Email:        "rui@exemplo.pt",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleDelegate,
	}

	t.Run("login válido gera token com as claims do usuário", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("rui@exemplo.pt").Return(user, nil)

		token, err := service.LoginUser("  Rui@Exemplo.pt ", "Senha@123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "rui@exemplo.pt", claims.UserEmail)
		assert.Equal(t, domain.RoleDelegate, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("rui@exemplo.pt").Return(user, nil)

		token, err := service.LoginUser("rui@exemplo.pt", "errada")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, 7, authErr.UserID)
	})

	t.Run("conta desativada", func(t *testing.T) {
		disabled := *user
		disabled.Active = false
		mockUserRepo.EXPECT().GetUserByEmail("rui@exemplo.pt").Return(&disabled, nil)

		_, err := service.LoginUser("rui@exemplo.pt", "Senha@123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("fantasma@exemplo.pt").Return(nil, nil)

		_, err := service.LoginUser("fantasma@exemplo.pt", "Senha@123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_ValidateToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	issuer := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "chave-a"}}
	verifier := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "chave-b"}}

	hash, err := bcrypt.GenerateFromPassword([]byte("Senha@123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().GetUserByEmail("rui@exemplo.pt").
		Return(&domain.User{ID: 7, Email: "rui@exemplo.pt", PasswordHash: string(hash), Active: true, RoleID: domain.RoleDelegate}, nil)

	token, err := issuer.LoginUser("rui@exemplo.pt", "Senha@123")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "chave-de-teste"}}

	t.Run("novo usuário nasce inativo com papel de delegado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@exemplo.pt").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.False(t, user.Active)
				assert.Equal(t, domain.RoleDelegate, user.RoleID)

				// A senha nunca é persistida em claro
				assert.NotEqual(t, "Senha@123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
				return user, nil
			})

		created, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Costa",
			Email:        "Ana@Exemplo.pt",
			PasswordHash: "Senha@123",
		})
		require.NoError(t, err)
		assert.Equal(t, "ana@exemplo.pt", created.Email)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("ana@exemplo.pt").
			Return(&domain.User{ID: 9, Email: "ana@exemplo.pt"}, nil)

		created, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Costa",
			Email:        "ana@exemplo.pt",
			PasswordHash: "Senha@123",
		})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("dados obrigatórios ausentes", func(t *testing.T) {
		created, err := service.CreateUser(&domain.User{Email: "ana@exemplo.pt"})
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "chave-de-teste"}}

	admin := &domain.User{ID: 1, RoleID: domain.RoleAdmin}
	delegate := &domain.User{ID: 7, RoleID: domain.RoleDelegate, PasswordHash: "antiga"}

	t.Run("admin redefine a senha do alvo", func(t *testing.T) {
		gomock.InOrder(
			mockUserRepo.EXPECT().GetUserByID(1).Return(admin, nil),
			mockUserRepo.EXPECT().GetUserByID(7).Return(delegate, nil),
			mockUserRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil),
		)

		password, err := service.GenerateStrongPassword(1, 7)
		require.NoError(t, err)

		// A senha gerada passa na própria régua de força
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})

	t.Run("não-admin não redefine senha de terceiros", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(delegate, nil)

		password, err := service.GenerateStrongPassword(7, 1)
		assert.Empty(t, password)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"senha forte", "Senha@123", ""},
		{"curta demais", "S@1a", "pelo menos 8 caracteres"},
		{"sem maiúscula", "senha@123", "letra maiúscula"},
		{"sem minúscula", "SENHA@123", "letra minúscula"},
		{"sem número", "Senha@abc", "um número"},
		{"sem caractere especial", "Senha1234", "caractere especial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: &config.Config{SecretKey: "chave-de-teste"}}

	hash, err := bcrypt.GenerateFromPassword([]byte("Atual@123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("troca válida persiste o novo hash", func(t *testing.T) {
		user := &domain.User{ID: 7, PasswordHash: string(hash)}

		gomock.InOrder(
			mockUserRepo.EXPECT().GetUserByID(7).Return(user, nil),
			mockUserRepo.EXPECT().
				UpdateUser(gomock.Any()).
				DoAndReturn(func(updated *domain.User) error {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("Nova@Senha1")))
					return nil
				}),
		)

		err := service.ChangePassword(7, "Atual@123", "Nova@Senha1")
		require.NoError(t, err)
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: string(hash)}, nil)

		err := service.ChangePassword(7, "errada", "Nova@Senha1")
		require.Error(t, err)
		assert.Equal(t, "senha atual incorreta", err.Error())
	})

	t.Run("nova senha fraca não é persistida", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: string(hash)}, nil)

		err := service.ChangePassword(7, "Atual@123", "fraca")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "8 caracteres")
	})
}

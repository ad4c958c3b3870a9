package service

import (
	"testing"
	"time"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/core/auth"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: 24 * time.Hour}
}

func TestRegister(t *testing.T) {
	users := newMemUsers()
	jwter := testJWTer()
	svc := NewAuthService(users, jwter)

	tok, view, err := svc.Register(RegisterInput{
		Name: "Ali", Email: "ali@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if view.Role != "user" {
		t.Errorf("default role = %q, want user", view.Role)
	}

	// token 解出的 uid 必须等于新建用户 id
	claims, err := jwter.Parse(tok)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UID != view.ID {
		t.Errorf("token uid = %q, want %q", claims.UID, view.ID)
	}

	// 库里存的是哈希，不是明文
	u, _ := users.FindByID(view.ID)
	if u == nil {
		t.Fatal("user not persisted")
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Error("password stored in plaintext or empty")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.com", Password: "secret123"}},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret123"}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.com", Password: "12345"}},
		{"bad role", RegisterInput{Name: "A", Email: "a@b.com", Password: "secret123", Role: "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMemUsers()
			svc := NewAuthService(users, testJWTer())
			if _, _, err := svc.Register(tt.in); apperr.Code(err) != 400 {
				t.Errorf("err = %v, want code 400", err)
			}
			if us, _ := users.List(); len(us) != 0 {
				t.Error("invalid registration persisted a user")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemUsers(), testJWTer())
	in := RegisterInput{Name: "A", Email: "dup@example.com", Password: "secret123"}
	if _, _, err := svc.Register(in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(in)
	if apperr.Code(err) != 400 {
		t.Errorf("duplicate email err = %v, want code 400", err)
	}
}

func TestLogin(t *testing.T) {
	users := newMemUsers()
	svc := NewAuthService(users, testJWTer())
	_, view, err := svc.Register(RegisterInput{Name: "A", Email: "a@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		tok, got, err := svc.Login(LoginInput{Email: "a@example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if tok == "" || got.ID != view.ID {
			t.Errorf("login view = %+v, want id %q", got, view.ID)
		}
	})

	// 密码错和账号不存在必须同码 401，不能让状态码泄露账号是否存在
	t.Run("wrong password is 401", func(t *testing.T) {
		_, _, err := svc.Login(LoginInput{Email: "a@example.com", Password: "wrong"})
		if apperr.Code(err) != 401 {
			t.Errorf("code = %d, want 401", apperr.Code(err))
		}
	})
	t.Run("unknown email is 401, never 404", func(t *testing.T) {
		_, _, err := svc.Login(LoginInput{Email: "ghost@example.com", Password: "whatever"})
		if apperr.Code(err) != 401 {
			t.Errorf("code = %d, want 401", apperr.Code(err))
		}
	})
	t.Run("both failures share message", func(t *testing.T) {
		_, _, e1 := svc.Login(LoginInput{Email: "a@example.com", Password: "wrong"})
		_, _, e2 := svc.Login(LoginInput{Email: "ghost@example.com", Password: "whatever"})
		if e1.Error() != e2.Error() {
			t.Errorf("messages differ: %q vs %q", e1.Error(), e2.Error())
		}
	})
}

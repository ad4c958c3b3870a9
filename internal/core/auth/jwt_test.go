package auth

import (
	"testing"
	"time"
)

func TestIssueParseRoundTrip(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "barakatfresh", TTL: time.Hour}
	tok, err := j.Issue("user-1", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	c, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UID != "user-1" || c.Role != "admin" {
		t.Errorf("claims = %+v, want uid user-1 role admin", c)
	}
}

func TestParseExpired(t *testing.T) {
	// leeway 60s，TTL 要负得够多才能过期
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "barakatfresh", TTL: -2 * time.Minute}
	tok, err := j.Issue("user-1", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := j.Parse(tok); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseWrongSecret(t *testing.T) {
	a := &JWTer{Secret: []byte("alpha"), Issuer: "barakatfresh", TTL: time.Hour}
	b := &JWTer{Secret: []byte("bravo"), Issuer: "barakatfresh", TTL: time.Hour}
	tok, err := a.Issue("user-1", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := b.Parse(tok); err == nil {
		t.Error("token signed with different secret accepted")
	}
}

func TestParseWrongIssuer(t *testing.T) {
	a := &JWTer{Secret: []byte("s3cret"), Issuer: "other-app", TTL: time.Hour}
	b := &JWTer{Secret: []byte("s3cret"), Issuer: "barakatfresh", TTL: time.Hour}
	tok, err := a.Issue("user-1", "user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := b.Parse(tok); err == nil {
		t.Error("token with wrong issuer accepted")
	}
}

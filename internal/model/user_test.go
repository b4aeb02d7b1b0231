package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUser_HashNeverSerialized(t *testing.T) {
	t.Parallel()

	user := User{
		ID:           "u1",
		Username:     "ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$somethingsecret",
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(data), "somethingsecret") {
		t.Error("password hash must never appear in serialized output")
	}
}

func TestUser_Public(t *testing.T) {
	t.Parallel()

	user := User{
		ID:           "u1",
		Username:     "ann",
		Email:        "ann@x.com",
		PasswordHash: "hash",
	}

	pub := user.Public()
	if pub.ID != "u1" || pub.Username != "ann" || pub.Email != "ann@x.com" {
		t.Errorf("unexpected public projection: %+v", pub)
	}
}

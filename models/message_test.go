package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMessageDetail_IsParticipant(t *testing.T) {
	detail := MessageDetail{
		FromUser: UserProfile{Username: "alice"},
		ToUser:   UserProfile{Username: "bob"},
	}

	if !detail.IsParticipant("alice") {
		t.Error("expected the sender to be a participant")
	}
	if !detail.IsParticipant("bob") {
		t.Error("expected the recipient to be a participant")
	}
	if detail.IsParticipant("mallory") {
		t.Error("expected an outsider not to be a participant")
	}
	if detail.IsParticipant("") {
		t.Error("expected an empty identity not to be a participant")
	}
}

func TestMessage_JSONOmitsUnreadTimestamp(t *testing.T) {
	unread := Message{ID: 1, FromUsername: "alice", ToUsername: "bob", Body: "hi", SentAt: time.Now()}

	data, err := json.Marshal(unread)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "read_at") {
		t.Errorf("expected read_at to be omitted while unread, got %s", data)
	}

	now := time.Now()
	unread.ReadAt = &now
	data, err = json.Marshal(unread)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "read_at") {
		t.Errorf("expected read_at to be present once read, got %s", data)
	}
}

func TestUser_JSONHidesPassword(t *testing.T) {
	user := User{Username: "alice", Password: "bcrypt-digest", FirstName: "Alice"}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "bcrypt-digest") || strings.Contains(string(data), "password") {
		t.Errorf("expected the credential field to stay out of JSON, got %s", data)
	}
}

func TestUser_PublicProfile(t *testing.T) {
	now := time.Now()
	user := User{
		Username:    "alice",
		Password:    "bcrypt-digest",
		FirstName:   "Alice",
		LastName:    "Aliceson",
		Phone:       "+15551234567",
		JoinAt:      now,
		LastLoginAt: &now,
	}

	profile := user.PublicProfile()
	if profile.Username != "alice" || profile.FirstName != "Alice" || profile.LastName != "Aliceson" || profile.Phone != "+15551234567" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

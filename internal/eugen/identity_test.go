package eugen

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("q") != "nova" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[{"eugenId":29370,"usernames":["Nova","HoBa"],"ranks":[47,52],"lastKnownRank":47}]`)
	}))
	defer srv.Close()

	users, err := NewIdentityClient(srv.URL, "secret").SearchUsers("nova")
	if err != nil {
		t.Fatalf("SearchUsers: %v", err)
	}
	if len(users) != 1 || users[0].EugenID != 29370 || len(users[0].Usernames) != 2 {
		t.Fatalf("users = %+v", users)
	}
}

func TestPushUsers(t *testing.T) {
	var got []User
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}))
	defer srv.Close()

	users := []User{{EugenID: 29370, Usernames: []string{"Nova"}}}
	if err := NewIdentityClient(srv.URL, "secret").PushUsers(users); err != nil {
		t.Fatalf("PushUsers: %v", err)
	}
	if len(got) != 1 || got[0].EugenID != 29370 {
		t.Fatalf("server received %+v", got)
	}
}

func TestPushUsersRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if err := NewIdentityClient(srv.URL, "wrong").PushUsers([]User{{EugenID: 1}}); err == nil {
		t.Fatal("expected error on HTTP 401")
	}
}

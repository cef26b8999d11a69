package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var ErrMalformedBody = errors.New("malformed JSON body")

// PathID читает {id} из маршрута.
func PathID(r *http.Request) (uuid.UUID, error) {
	return ParseID("id", mux.Vars(r)["id"])
}

func ParseID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q", name, raw)
	}

	return id, nil
}

func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return nil
}

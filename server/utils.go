package server

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	uuid "github.com/satori/go.uuid"
)

// NewID returns a fresh player ID
func NewID() string {
	return uuid.NewV4().String()
}

var gameIDLetters = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// NewGameID returns a short joinable room code
func NewGameID() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, 6)
	for i := range code {
		code[i] = gameIDLetters[r.Intn(len(gameIDLetters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	log.Println(err.Error())
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
}

package logger

import (
	"io"
	"log"
	"os"
)

const prefix = "SH4 "

// New returns a logger writing to stdout, or appending to path.
// Fails hard when the file can't be opened.
func New(path string) *log.Logger {
	l, _, err := Open(path)
	if err != nil {
		log.Fatal(err)
	}
	return l
}

// Open is New returning the log file, so that it can be closed.
// The closer is a no-op for stdout.
func Open(path string) (*log.Logger, io.Closer, error) {
	if len(path) == 0 {
		return log.New(os.Stdout, prefix, log.Ldate|log.Ltime|log.Lshortfile), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, nil, err
	}
	l := log.New(f, prefix, log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("Initializing %s", path)
	return l, f, nil
}

// Command planner-mcp serves the productivity store over stdio JSON-RPC
// (Model Context Protocol), sharing its storage with the planner CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Donne-shi/daily-planner/internal/logger"
	"github.com/Donne-shi/daily-planner/internal/mcpserver"
	"github.com/Donne-shi/daily-planner/internal/storage"
	"github.com/Donne-shi/daily-planner/internal/store"
)

func run() int {
	dataFlag := flag.String("data", "", "data path (directory or .db file); defaults to the per-user config directory")
	flag.Parse()

	// stdout carries the protocol, so diagnostics go to stderr only.
	errLogger := log.New(os.Stderr, "[planner-mcp] ", log.LstdFlags)

	dataPath := *dataFlag
	if dataPath == "" {
		var err error
		dataPath, err = storage.DefaultPath()
		if err != nil {
			errLogger.Printf("resolve data path: %v", err)
			return 1
		}
	}

	logDir := dataPath
	if strings.HasSuffix(dataPath, ".db") {
		logDir = filepath.Dir(dataPath)
	}
	if err := logger.Init(logger.Config{DataDir: logDir}); err != nil {
		errLogger.Printf("init logger: %v", err)
		return 1
	}

	kv, err := storage.Open(dataPath)
	if err != nil {
		errLogger.Printf("open storage: %v", err)
		return 1
	}
	defer kv.Close()

	st := store.New(storage.NewGateway(kv))
	st.Load()
	defer st.Flush()

	srv := mcpserver.NewServer(st)
	if err := server.ServeStdio(srv, server.WithErrorLogger(errLogger)); err != nil {
		errLogger.Printf("server error: %v", err)
		return 1
	}
	return 0
}

func main() {
	code := run()
	if code != 0 {
		fmt.Fprintln(os.Stderr, "planner-mcp exited with an error")
	}
	os.Exit(code)
}

// Command setup creates the venture database when it is missing and applies
// the embedded migrations. With -reset it drops the database first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/VentureBot_Go/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "Drop the database before creating it")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		log.Fatal("DB_NAME is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()
	if *reset {
		log.Printf("Terminating connections to %s...", dbName)
		if _, err := conn.Exec(ctx, `SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}
		log.Printf("Dropping database %s if it exists...", dbName)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}
	if !exists {
		log.Printf("Creating database %s...", dbName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	} else {
		log.Printf("Database %s already exists.", dbName)
	}
	conn.Close(ctx)

	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
	pool, err := database.NewPool(ctx, targetConnString, 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Unable to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Database ready.")
}

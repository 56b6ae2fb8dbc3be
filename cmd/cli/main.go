package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appdb "github.com/yourorg/liftpro/internal/db"
	"github.com/yourorg/liftpro/internal/engine"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== LiftPro CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (create sample user)")
		fmt.Println("3) Issue access code for an email")
		fmt.Println("4) Run sample analysis")
		fmt.Println("5) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed()
		case "3":
			doIssueCode(reader)
		case "4":
			doSampleAnalysis()
		case "5":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	url := strings.TrimRight(base, "/") + "/api/health"
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("Health status:", resp.Status)
}

func doSeed() {
	db, err := connect()
	if err != nil {
		return
	}
	defer db.Close()
	seedUser(db)
}

// doIssueCode creates an access code bound to an email. Run this after a
// payment notification comes in; the user redeems it via POST /api/activate.
func doIssueCode(reader *bufio.Reader) {
	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		fmt.Println("Issue code: invalid email")
		return
	}

	db, err := connect()
	if err != nil {
		return
	}
	defer db.Close()

	code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
	if _, err := db.Exec("INSERT INTO access_codes (code,email) VALUES (?,?)", code, email); err != nil {
		fmt.Println("Issue code: insert error:", err)
		return
	}
	fmt.Printf("Issue code: created %s for %s\n", code, email)
}

func doSampleAnalysis() {
	// Edificio de oficinas de referencia: 12 plantas, 400 personas
	result, err := engine.Analyze(engine.AnalysisRequest{
		Fleet: engine.FleetConfig{
			NumElevators: 4,
			RatedSpeed:   1.6,
			CarCapacity:  10,
		},
		Doors: engine.DoorTimings{
			Open:   4.5,
			Close:  4.5,
			Dwell:  3.0,
			Load:   0.5,
			Unload: 1.3,
		},
		Zone:             engine.ZoneConfig{TotalFloors: 12},
		TargetPopulation: 400,
		ServedFloors:     12,
	})
	if err != nil {
		fmt.Println("Analysis: ERROR:", err)
		return
	}

	m := result.Metrics
	fmt.Println("Sample analysis (office, 12 floors, 400 persons, 4 cars):")
	fmt.Printf("  Expected stops (S):       %.2f\n", result.Occupancy.ExpectedStops)
	fmt.Printf("  Highest reversal (H):     %.2f\n", result.Occupancy.HighestReversal)
	fmt.Printf("  Round trip time (RTT):    %.2f s\n", m.RTT)
	fmt.Printf("  Interval:                 %.2f s\n", m.Interval)
	fmt.Printf("  Average waiting time:     %.2f s\n", m.AWT)
	fmt.Printf("  Handling capacity:        %.2f persons / 5 min (%.2f%%)\n", m.HCPersons, m.HCPercent)
}

func connect() (*sql.DB, error) {
	db, err := appdb.Connect()
	if err != nil {
		log.Println("DB connect error:", err)
		return nil, err
	}
	if err := appdb.EnsureSchema(db); err != nil {
		log.Println("Ensure schema error:", err)
		db.Close()
		return nil, err
	}
	return db, nil
}

func seedUser(db *sql.DB) {
	// Creates a sample user if not exists
	username := "demo"
	email := "demo@example.com"
	name := "Demo"
	password := "demo1234"
	var exists int
	_ = db.QueryRow("SELECT 1 FROM users WHERE username = ?", username).Scan(&exists)
	if exists == 1 {
		fmt.Println("Seed: user 'demo' already exists")
		return
	}
	hash, err := bcryptHash(password)
	if err != nil {
		fmt.Println("Seed: bcrypt error:", err)
		return
	}
	_, err = db.Exec("INSERT INTO users (username,email,name,password_hash) VALUES (?,?,?,?)", username, email, name, hash)
	if err != nil {
		fmt.Println("Seed: insert error:", err)
		return
	}
	fmt.Println("Seed: created user 'demo' with password 'demo1234'")
}

func bcryptHash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

package testutils

// SampleCodeGo holds Go samples keyed by rule ID.
var SampleCodeGo = map[string][]CodeSample{
	"go-sql-injection": {
		{`
package main

func find(db *sql.DB, name string) {
	rows, err := db.Query("SELECT * FROM users WHERE name = '" + name + "'")
	_, _ = rows, err
}
`, "users.go", 1},
		{`
package main

func find(db *sql.DB, name string) {
	rows, err := db.Query("SELECT * FROM users WHERE name = $1", name)
	_, _ = rows, err
}
`, "users.go", 0},
		{`
package main

func count(table string) string {
	return fmt.Sprintf("SELECT count(*) FROM %s WHERE active", table)
}
`, "users.go", 1},
	},
	"go-command-injection": {
		{`
package main

func run(userCmd string) error {
	return exec.Command("sh", "-c", userCmd).Run()
}
`, "run.go", 1},
		{`
package main

func status() error {
	return exec.Command("git", "status").Run()
}
`, "run.go", 0},
		{`
package main

func list(dir string) error {
	return exec.Command("ls " + dir).Run()
}
`, "run.go", 1},
	},
	"go-unsafe-pointer": {
		{`
package main

import "unsafe"

func addr(x *int) uintptr {
	return uintptr(unsafe.Pointer(x))
}
`, "ptr.go", 1},
		{`
package main

import "fmt"

// unsafe.Pointer is avoided here
func show(x int) {
	fmt.Println(x)
}
`, "ptr.go", 0},
	},
	"go-insecure-random": {
		{`
package main

import "math/rand"

func newToken() int {
	return rand.Intn(1000000)
}
`, "token.go", 1},
		{`
package main

import "crypto/rand"

func newToken() []byte {
	b := make([]byte, 16)
	rand.Read(b)
	return b
}
`, "token.go", 0},
		{`
package main

import "math/rand"

func backoff(attempt int) int {
	jitter := rand.Intn(100)
	return attempt*1000 + jitter
}
`, "retry.go", 0},
	},
	"go-tls-insecure-skip-verify": {
		{`
package main

var cfg = &tls.Config{InsecureSkipVerify: true}
`, "client.go", 1},
		{`
package main

var cfg = &tls.Config{InsecureSkipVerify: false}
`, "client.go", 0},
	},
	"go-path-traversal": {
		{`
package main

func serve(w http.ResponseWriter, r *http.Request) {
	data, _ := os.ReadFile("/srv/" + r.URL.Query().Get("f"))
	w.Write(data)
}
`, "files.go", 1},
		{`
package main

func serve(w http.ResponseWriter, r *http.Request) {
	data, _ := os.ReadFile(filepath.Join("/srv", filepath.Base(r.URL.Query().Get("f"))))
	w.Write(data)
}
`, "files.go", 0},
	},
	"go-xss": {
		{`
package main

func render(w io.Writer, userInput string) {
	w.Write([]byte(template.HTML(userInput)))
}
`, "render.go", 1},
		{`
package main

var banner = template.HTML("<b>ok</b>")
`, "render.go", 0},
	},
}

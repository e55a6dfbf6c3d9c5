package database

import "testing"

func TestConfig_DSN(t *testing.T) {
	c := &Config{Host: "db", Port: "5432", User: "u", Password: "p", Name: "laundry", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=laundry sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

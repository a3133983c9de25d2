package config

import "testing"

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"MONGO_URI": "mongodb://localhost:27017"}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.StoreDriver != DriverMongo {
		t.Errorf("StoreDriver = %q, want %q", cfg.StoreDriver, DriverMongo)
	}
	if cfg.MongoDatabase != "QuickAidDB" || cfg.MongoCollection != "Tickets" {
		t.Errorf("mongo names = %q/%q", cfg.MongoDatabase, cfg.MongoCollection)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.AdminAlertsEnabled() {
		t.Error("admin alerts enabled without BOT_TOKEN")
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mongo without uri", map[string]string{}},
		{"mysql without host", map[string]string{"STORE_DRIVER": "mysql", "DB_USER": "u", "DB_NAME": "d"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "cosmos"}},
		{"bad admin id", map[string]string{"STORE_DRIVER": "memory", "ADMIN_ID": "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tt.env)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMySQLDSNAndAlerts(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"STORE_DRIVER": "mysql",
		"DB_HOST":      "db:3306",
		"DB_USER":      "quickaid",
		"DB_PASS":      "secret",
		"DB_NAME":      "helpdesk",
		"BOT_TOKEN":    "123:abc",
		"ADMIN_ID":     "42",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := "quickaid:secret@tcp(db:3306)/helpdesk?charset=utf8mb4&parseTime=true"
	if got := cfg.MySQLDSN(); got != want {
		t.Errorf("MySQLDSN() = %q, want %q", got, want)
	}
	if !cfg.AdminAlertsEnabled() || cfg.AdminID != 42 {
		t.Errorf("admin alerts = %v, id = %d", cfg.AdminAlertsEnabled(), cfg.AdminID)
	}
}

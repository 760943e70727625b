package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantCloud string
	}{
		{name: "hcloud", cfg: Config{Provider: ProviderHCloud}, wantCloud: "Hetzner Cloud"},
		{name: "ec2", cfg: Config{Provider: ProviderEC2}, wantCloud: "AWS"},
		{name: "explicit cloud kept", cfg: Config{Provider: ProviderEC2, Cloud: "Jetstream"}, wantCloud: "Jetstream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.ApplyDefaults()

			if cfg.Cloud != tt.wantCloud {
				t.Errorf("Cloud = %q, want %q", cfg.Cloud, tt.wantCloud)
			}
			if cfg.NamePrefix != "cloudlaunch" {
				t.Errorf("NamePrefix = %q, want %q", cfg.NamePrefix, "cloudlaunch")
			}
			if cfg.Server.Listen != DefaultListen {
				t.Errorf("Server.Listen = %q, want %q", cfg.Server.Listen, DefaultListen)
			}
		})
	}
}

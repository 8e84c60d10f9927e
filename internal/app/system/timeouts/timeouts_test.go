package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want %v", Ping(), DefaultPing)
	}
	if Short() != DefaultShort {
		t.Errorf("Short() = %v, want %v", Short(), DefaultShort)
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", Medium(), DefaultMedium)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Setenv("HIREHUB_TIMEOUT_PING", "750ms")
	t.Setenv("HIREHUB_TIMEOUT_SHORT", "bogus")

	defer Reset()
	n := ConfigureFromEnv()

	if n != 1 {
		t.Errorf("ConfigureFromEnv() = %d, want 1", n)
	}
	if Ping() != 750*time.Millisecond {
		t.Errorf("Ping() = %v, want 750ms", Ping())
	}
	if Short() != DefaultShort {
		t.Errorf("Short() = %v, want default after invalid override", Short())
	}
}

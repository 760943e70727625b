package skill

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

func testLogger(t *testing.T) logr.Logger {
	return funcr.New(func(prefix, args string) {
		t.Log(prefix, args)
	}, funcr.Options{})
}

func cltestInstance(id string) provider.Instance {
	return provider.Instance{ID: id, Name: "galaxy", State: provider.StatePending}
}

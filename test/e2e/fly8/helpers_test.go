package fly8_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for the fly8 API end-to-end tests.
 * This includes container setup and a few flows shared between tests.
 */

const (
	testImageName = "fly8-api-test:latest"

	demoPassword = "demo-password-123"
	jwtSecret    = "e2e-secret-e2e-secret-e2e-secret-0123"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	fmt.Fprintf(os.Stdout, "Building Fly8 API Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Fly8 API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/fly8/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.Command("docker", "rmi", "-f", testImageName).Run()
}

// setupAPIContainer starts the API with the demo accounts seeded and
// returns a client for it.
func setupAPIContainer(t *testing.T) *fly8sdk.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests need docker")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			"FLY8_JWT_SECRET":      jwtSecret,
			"FLY8_SEED_DEMO_USERS": "true",
			"FLY8_DEMO_PASSWORD":   demoPassword,
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fly8sdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// login returns a client acting as the given account.
func login(t *testing.T, client *fly8sdk.Client, email, password string) *fly8sdk.Client {
	t.Helper()

	resp, err := client.Login(t.Context(), email, password)
	require.NoError(t, err, "login as %s should succeed", email)
	require.NotEmpty(t, resp.Token)
	return client.WithToken(resp.Token)
}

// signupStudent registers a fresh student and returns a client acting as it.
func signupStudent(t *testing.T, client *fly8sdk.Client, email string) *fly8sdk.Client {
	t.Helper()

	resp, err := client.Signup(t.Context(), fly8sdk.SignupRequest{
		Email:     email,
		Password:  "student-pass-1",
		FirstName: "E2E",
		LastName:  "Student",
	})
	require.NoError(t, err)
	require.Equal(t, "student", resp.User.Role)
	return client.WithToken(resp.Token)
}

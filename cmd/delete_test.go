package cmd

import (
	"strings"
	"testing"

	"github.com/stint-sh/stint/internal/tracker"
)

func TestDeleteEntry_Confirmed(t *testing.T) {
	td := setupTestDeps(t)
	seeded := seedEntry(t, tracker.CreateInput{ProjectID: 1, Date: today(), DurationMinutes: minutesArg(60)})

	setStdin("y\n")
	deleteEntry(seeded.ID)

	if td.exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", td.exitCode, td.stderr)
	}
	out := td.stdout.String()
	if !strings.Contains(out, "Entry to delete:") {
		t.Errorf("expected entry preview, got:\n%s", out)
	}
	if !strings.Contains(out, "Deleted: 1h on Web Design") {
		t.Errorf("expected deletion message, got:\n%s", out)
	}

	sess, err := newSession()
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	if len(sess.tracker.Entries()) != 0 {
		t.Error("entry still present after confirmed delete")
	}
}

func TestDeleteEntry_Cancelled(t *testing.T) {
	td := setupTestDeps(t)
	seeded := seedEntry(t, tracker.CreateInput{ProjectID: 1, Date: today(), DurationMinutes: minutesArg(60)})

	setStdin("n\n")
	deleteEntry(seeded.ID)

	if !strings.Contains(td.stdout.String(), "Deletion cancelled") {
		t.Errorf("expected cancellation message, got:\n%s", td.stdout)
	}

	sess, err := newSession()
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	if len(sess.tracker.Entries()) != 1 {
		t.Error("cancelled delete removed the entry")
	}
}

func TestDeleteEntry_YesFlag(t *testing.T) {
	td := setupTestDeps(t)
	seeded := seedEntry(t, tracker.CreateInput{ProjectID: 1, Date: today(), DurationMinutes: minutesArg(30)})

	deleteYesFlag = true
	defer func() { deleteYesFlag = false }()

	deleteEntry(seeded.ID)

	if td.exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", td.exitCode, td.stderr)
	}
	if strings.Contains(td.stdout.String(), "[y/N]") {
		t.Error("--yes must skip the confirmation prompt")
	}
}

func TestDeleteEntry_UnknownID(t *testing.T) {
	td := setupTestDeps(t)

	deleteEntry("no-such-id")

	if td.exitCode != 1 {
		t.Fatalf("exit code = %d, want 1", td.exitCode)
	}
	if !strings.Contains(td.stderr.String(), "not found") {
		t.Errorf("expected not-found error, got:\n%s", td.stderr)
	}
}

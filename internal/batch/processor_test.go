package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raaihank/nomoji/internal/config"
	"github.com/raaihank/nomoji/internal/emoji"
	"github.com/raaihank/nomoji/internal/logger"
)

func newTestProcessor(t *testing.T, opts Options) (*Processor, *bytes.Buffer) {
	t.Helper()

	cfg := config.GetDefaults()
	stripper, err := emoji.New(cfg.Strip, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create stripper: %v", err)
	}

	p := NewProcessor(cfg, opts, stripper, logger.Nop())
	stdout := &bytes.Buffer{}
	p.Stdout = stdout
	return p, stdout
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	t.Run("InPlace", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{InPlace: true})
		path := writeTemp(t, "Hello 😀 World 🌍!\n")

		result := p.ProcessFile(path)
		if !result.Success {
			t.Fatalf("ProcessFile failed: %v", result.Err)
		}
		if result.Removed != 2 {
			t.Errorf("Removed = %d, want 2", result.Removed)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "Hello  World !\n" {
			t.Errorf("File content = %q, want %q", content, "Hello  World !\n")
		}
	})

	t.Run("DryRunLeavesFileUntouched", func(t *testing.T) {
		p, stdout := newTestProcessor(t, Options{DryRun: true})
		path := writeTemp(t, "Test 🚀 content\n")

		result := p.ProcessFile(path)
		if !result.Success {
			t.Fatalf("ProcessFile failed: %v", result.Err)
		}
		if result.Removed != 1 {
			t.Errorf("Removed = %d, want 1", result.Removed)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "🚀") {
			t.Error("Dry run modified the source file")
		}
		if stdout.Len() != 0 {
			t.Errorf("Dry run wrote %q to stdout", stdout.String())
		}
	})

	t.Run("BackupKeepsOriginal", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{Backup: true})
		path := writeTemp(t, "Backup test 🔥\n")

		result := p.ProcessFile(path)
		if !result.Success {
			t.Fatalf("ProcessFile failed: %v", result.Err)
		}

		backup, err := os.ReadFile(path + ".bak")
		if err != nil {
			t.Fatalf("Backup file missing: %v", err)
		}
		if !strings.Contains(string(backup), "🔥") {
			t.Errorf("Backup content = %q, want original text", backup)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "Backup test \n" {
			t.Errorf("Source content = %q, want filtered text", content)
		}
	})

	t.Run("BackupFailureAbortsWrite", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{Backup: true})

		dir := t.TempDir()
		path := filepath.Join(dir, "input.txt")
		if err := os.WriteFile(path, []byte("keep 😀 me\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		// A directory at the backup path makes the copy fail
		if err := os.Mkdir(path+".bak", 0o755); err != nil {
			t.Fatal(err)
		}

		result := p.ProcessFile(path)
		if result.Success {
			t.Fatal("Expected backup failure")
		}
		if result.Err == nil || !strings.Contains(result.Err.Error(), "backup") {
			t.Errorf("Err = %v, want backup failure", result.Err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "😀") {
			t.Error("Source was overwritten despite backup failure")
		}
	})

	t.Run("DefaultModeWritesStdout", func(t *testing.T) {
		p, stdout := newTestProcessor(t, Options{})
		path := writeTemp(t, "To stdout 😀\n")

		result := p.ProcessFile(path)
		if !result.Success {
			t.Fatalf("ProcessFile failed: %v", result.Err)
		}
		if stdout.String() != "To stdout \n" {
			t.Errorf("Stdout = %q, want %q", stdout.String(), "To stdout \n")
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "😀") {
			t.Error("Default mode modified the source file")
		}
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{})

		result := p.ProcessFile(filepath.Join(t.TempDir(), "missing.txt"))
		if result.Success {
			t.Fatal("Expected failure for nonexistent file")
		}
		if result.Err == nil {
			t.Fatal("Err is nil for nonexistent file")
		}
		if result.Removed != 0 {
			t.Errorf("Removed = %d, want 0", result.Removed)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{DryRun: true})

		path := filepath.Join(t.TempDir(), "binary.bin")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
			t.Fatal(err)
		}

		result := p.ProcessFile(path)
		if result.Success {
			t.Fatal("Expected failure for invalid UTF-8")
		}
		if !strings.Contains(result.Err.Error(), "UTF-8") {
			t.Errorf("Err = %v, want UTF-8 decode failure", result.Err)
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("FailureDoesNotStopBatch", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{DryRun: true})

		good := writeTemp(t, "one 😀\n")
		bad := filepath.Join(t.TempDir(), "missing.txt")
		alsoGood := writeTemp(t, "two 😀🌍\n")

		results := p.Run([]string{good, bad, alsoGood})
		if len(results) != 3 {
			t.Fatalf("Results = %d, want 3", len(results))
		}
		if !results[0].Success || results[1].Success || !results[2].Success {
			t.Errorf("Success pattern = %v/%v/%v, want true/false/true",
				results[0].Success, results[1].Success, results[2].Success)
		}
		if Failed(results) != 1 {
			t.Errorf("Failed = %d, want 1", Failed(results))
		}
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{DryRun: true})

		a := writeTemp(t, "a")
		b := writeTemp(t, "b")
		results := p.Run([]string{a, b})
		if results[0].File != a || results[1].File != b {
			t.Error("Results out of order")
		}
	})
}

func TestProcessStdin(t *testing.T) {
	t.Run("FiltersOntoWriter", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{})

		var out bytes.Buffer
		count, err := p.ProcessStdin(strings.NewReader("Hello 😀 World 🌍!"), &out)
		if err != nil {
			t.Fatalf("ProcessStdin failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Count = %d, want 2", count)
		}
		if out.String() != "Hello  World !" {
			t.Errorf("Output = %q, want %q", out.String(), "Hello  World !")
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{})

		var out bytes.Buffer
		count, err := p.ProcessStdin(strings.NewReader(""), &out)
		if err != nil {
			t.Fatalf("ProcessStdin failed: %v", err)
		}
		if count != 0 || out.Len() != 0 {
			t.Errorf("Count = %d, output = %q; want 0 and empty", count, out.String())
		}
	})

	t.Run("InvalidUTF8IsFatal", func(t *testing.T) {
		p, _ := newTestProcessor(t, Options{})

		var out bytes.Buffer
		_, err := p.ProcessStdin(bytes.NewReader([]byte{0xff, 0xfe}), &out)
		if err == nil {
			t.Fatal("Expected error for invalid UTF-8 on stdin")
		}
	})
}

func TestPrintReport(t *testing.T) {
	results := []Result{
		{File: "ok.txt", Removed: 5, Success: true},
		{File: "bad.txt", Removed: 0, Err: os.ErrNotExist},
	}

	var out bytes.Buffer
	PrintReport(&out, results)

	report := out.String()
	for _, want := range []string{
		"=== nomoji Report ===",
		"Files processed: 2",
		"Successful: 1",
		"Failed: 1",
		"Total emojis found: 5",
		"ok.txt: 5 emojis removed",
		"bad.txt: 0 emojis - ERROR:",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}

func TestPrintReportAllSuccessful(t *testing.T) {
	results := []Result{{File: "ok.txt", Removed: 1, Success: true}}

	var out bytes.Buffer
	PrintReport(&out, results)

	if strings.Contains(out.String(), "Failed:") {
		t.Error("Failed line printed when every file succeeded")
	}
}

func TestPrintStdinReport(t *testing.T) {
	var out bytes.Buffer
	PrintStdinReport(&out, 3)

	if !strings.Contains(out.String(), "Emojis removed from stdin: 3") {
		t.Errorf("Unexpected stdin report: %q", out.String())
	}
}

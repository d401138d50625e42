package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Ошибка создания каталога: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
}

func TestExtractFromNoMetadataFile(t *testing.T) {
	testFilePath := filepath.Join(t.TempDir(), "Artist - Title.mp3")
	writeFile(t, testFilePath, []byte("fake content"))

	track := NewExtractor().ExtractFromFile(testFilePath)

	if track.Artist != "Artist" {
		t.Errorf("Ожидался Artist: Artist, получено: %s", track.Artist)
	}
	if track.Title != "Title" {
		t.Errorf("Ожидался Title: Title, получено: %s", track.Title)
	}
	if track.Duration != 0 {
		t.Errorf("Ожидалась нулевая длительность для некорректного MP3, получено: %v", track.Duration)
	}
	if track.Path != testFilePath {
		t.Errorf("Ожидался Path: %s, получено: %s", testFilePath, track.Path)
	}
}

func TestExtractFromCorruptedFile(t *testing.T) {
	testFilePath := filepath.Join(t.TempDir(), "Unknown - Track.mp3")
	writeFile(t, testFilePath, []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD})

	track := NewExtractor().ExtractFromFile(testFilePath)

	if track.Artist != "Unknown" {
		t.Errorf("Ожидался Artist: Unknown, получено: %s", track.Artist)
	}
	if track.Title != "Track" {
		t.Errorf("Ожидался Title: Track, получено: %s", track.Title)
	}
}

func TestGetDefaultMetadata(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		source string
		artist string
		title  string
	}{
		{"/path/to/Artist - Title.mp3", "Artist", "Title"},
		{"/path/to/SimpleTrack.mp3", "Unknown Artist", "SimpleTrack"},
		{"/path/to/Artist - Album - Title.mp3", "Artist", "Album - Title"},
	}

	for _, test := range tests {
		track := extractor.ExtractFromFile(test.source)
		if track.Artist != test.artist {
			t.Errorf("%s: ожидался Artist: %s, получено: %s", test.source, test.artist, track.Artist)
		}
		if track.Title != test.title {
			t.Errorf("%s: ожидался Title: %s, получено: %s", test.source, test.title, track.Title)
		}
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		track    Track
		expected string
	}{
		{Track{Artist: "Queen", Title: "Bohemian Rhapsody"}, "Queen - Bohemian Rhapsody"},
		{Track{Artist: "Unknown Artist", Title: "SimpleTrack"}, "SimpleTrack"},
		{Track{Title: "NoArtist"}, "NoArtist"},
	}

	for _, test := range tests {
		if result := test.track.DisplayTitle(); result != test.expected {
			t.Errorf("DisplayTitle(%+v) = %s; expected %s", test.track, result, test.expected)
		}
	}
}

func TestGetDurationInvalidFile(t *testing.T) {
	extractor := NewExtractor()

	if _, err := extractor.GetDuration("/non/existent.mp3"); err == nil {
		t.Error("Ожидалась ошибка для несуществующего файла")
	}

	testFilePath := filepath.Join(t.TempDir(), "broken.mp3")
	writeFile(t, testFilePath, []byte("not an mp3"))
	if _, err := extractor.GetDuration(testFilePath); err == nil {
		t.Error("Ожидалась ошибка декодирования")
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b - Second.mp3"), []byte("x"))
	writeFile(t, filepath.Join(dir, "a - First.MP3"), []byte("x"))
	writeFile(t, filepath.Join(dir, "nested", "c - Third.mp3"), []byte("x"))
	writeFile(t, filepath.Join(dir, "cover.jpg"), []byte("x"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("x"))

	tracks, err := NewExtractor().ScanDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("Ошибка сканирования: %v", err)
	}

	expected := []string{"a - First", "b - Second", "c - Third"}
	if len(tracks) != len(expected) {
		t.Fatalf("Ожидалось %d файлов, получено %d", len(expected), len(tracks))
	}
	for i, track := range tracks {
		if track.DisplayTitle() != expected[i] {
			t.Errorf("Файл %d: ожидалось %s, получено %s", i, expected[i], track.DisplayTitle())
		}
	}
}

func TestScanDirMissing(t *testing.T) {
	_, err := NewExtractor().ScanDir(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Ожидалась ошибка для несуществующего каталога")
	}
}

func TestScanDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mp3"), []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewExtractor().ScanDir(ctx, dir); err == nil {
		t.Error("Ожидалась ошибка отмены")
	}
}

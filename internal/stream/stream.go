package stream

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/baluflix/baluflix/internal/storage"
)

// Streamer serves stored files with single-range Range support.
// Multi-range requests are not parsed; any Range header that is not a
// plain bytes=start-end form gets the full 200 response.
type Streamer struct {
	files storage.Storage
}

func New(files storage.Storage) *Streamer {
	return &Streamer{files: files}
}

// Serve writes the file at path to the response. Without a Range
// header the whole file is streamed with status 200. With a
// satisfiable range the byte span is streamed with status 206; a start
// at or past EOF yields 416.
func (s *Streamer) Serve(w http.ResponseWriter, r *http.Request, path, contentType string) {
	size, err := s.files.Stat(path)
	if err != nil {
		http.Error(w, "Video file not found", http.StatusNotFound)
		return
	}

	start, end, ok := parseRange(r.Header.Get("Range"), size)
	if ok && start >= size {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		fmt.Fprintf(w, "Requested range not satisfiable\n%d >= %d", start, size)
		return
	}

	file, err := s.files.OpenFile(path)
	if err != nil {
		http.Error(w, "Video file not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)

	if !ok {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		w.WriteHeader(http.StatusOK)
		// A failed copy after this point can only abort the connection.
		io.Copy(w, file)
		return
	}

	if _, err := file.Seek(start, io.SeekStart); err != nil {
		http.Error(w, "Error reading video file", http.StatusInternalServerError)
		return
	}

	length := end - start + 1
	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Length", strconv.FormatInt(length, 10))
	w.WriteHeader(http.StatusPartialContent)
	io.CopyN(w, file, length)
}

// parseRange reads the single-range form "bytes=start-end". end may be
// omitted and is clamped to the last byte. ok is false for an absent
// or unsupported header, leaving the caller to send the full response.
func parseRange(header string, size int64) (start, end int64, ok bool) {
	if !strings.HasPrefix(header, "bytes=") {
		return 0, 0, false
	}

	rangeSpec := strings.TrimPrefix(header, "bytes=")
	if strings.Contains(rangeSpec, ",") {
		// Multi-range is unsupported.
		return 0, 0, false
	}

	parts := strings.SplitN(rangeSpec, "-", 2)
	if len(parts) != 2 || parts[0] == "" {
		return 0, 0, false
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false
	}

	end = size - 1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, false
		}
		if end > size-1 {
			end = size - 1
		}
	}

	return start, end, true
}

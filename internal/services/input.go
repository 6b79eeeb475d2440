package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"
	"sync"
	"time"

	"avatar-filter/internal/dataurl"
	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
)

var (
	// ErrUnsupportedType rejects a drop whose declared media type is not
	// an accepted image subtype.
	ErrUnsupportedType = errors.New("incompatible file type")
	// ErrSuperseded reports a decode overtaken by a newer drop.
	ErrSuperseded = errors.New("superseded by a newer image")
)

// AcceptedSubtypes are matched against the declared media type with the
// image/ prefix removed.
var AcceptedSubtypes = []string{"png", "bmp", "jpg", "jpeg", "gif"}

// InputService turns dropped files into avatars. When drops overlap, the
// newest one wins: older decodes are cancelled and their results dropped.
type InputService struct {
	repository *models.ImageRepository
	logger     logger.Logger
	timeout    time.Duration

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewInputService(repo *models.ImageRepository, log logger.Logger, timeout time.Duration) *InputService {
	if timeout <= 0 {
		timeout = models.DefaultDecodeTimeout
	}
	return &InputService{
		repository: repo,
		logger:     log,
		timeout:    timeout,
	}
}

// Accept checks a declared media type against AcceptedSubtypes.
func (is *InputService) Accept(mediaType string) error {
	subtype := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(subtype, ';'); i >= 0 {
		subtype = strings.TrimSpace(subtype[:i])
	}
	subtype = strings.TrimPrefix(subtype, "image/")

	for _, accepted := range AcceptedSubtypes {
		if subtype == accepted {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
}

// Load validates, reads and decodes src, then stores it as the current
// avatar. Unsupported types fail before anything is read.
func (is *InputService) Load(ctx context.Context, src Source) (*models.AvatarImage, error) {
	mediaType := src.MediaType()
	if err := is.Accept(mediaType); err != nil {
		return nil, err
	}

	ctx, ticket := is.begin(ctx)
	defer is.finish(ticket)

	startTime := time.Now()

	res, err := is.withDeadline(ctx, func() decoded {
		data, err := readSource(src)
		if err != nil {
			return decoded{err: err}
		}
		res := decodeData(dataurl.Encode(mediaType, data))
		res.size = len(data)
		return res
	})
	if err != nil {
		if !is.current(ticket) {
			return nil, ErrSuperseded
		}
		return nil, err
	}
	img, format := res.img, res.format

	avatar := models.NewAvatarImage(img, mediaType, src.Name())
	avatar.Metadata = models.ImageMetadata{
		FileSize:   int64(res.size),
		Format:     format,
		LoadTime:   time.Now(),
		DecodeTime: time.Since(startTime),
	}

	// Checked and stored under the lock so a newer drop cannot slip in
	// between.
	is.mu.Lock()
	defer is.mu.Unlock()
	if ticket != is.generation {
		return nil, ErrSuperseded
	}
	is.repository.SetAvatar(avatar)

	is.logger.Info("InputService", "avatar decoded", map[string]interface{}{
		"source":    avatar.Source,
		"format":    format,
		"width":     avatar.Width,
		"height":    avatar.Height,
		"decode_ms": avatar.Metadata.DecodeTime.Milliseconds(),
	})
	return avatar, nil
}

// DecodeURL decodes an image data URL with the service's deadline.
func (is *InputService) DecodeURL(ctx context.Context, url string) (image.Image, error) {
	img, _, err := is.decodeURL(ctx, url)
	return img, err
}

type decoded struct {
	img    image.Image
	format string
	size   int
	err    error
}

func (is *InputService) decodeURL(ctx context.Context, url string) (image.Image, string, error) {
	res, err := is.withDeadline(ctx, func() decoded { return decodeData(url) })
	return res.img, res.format, err
}

// withDeadline runs work under the decode timeout. A stalled open, read or
// decode is abandoned when ctx ends.
func (is *InputService) withDeadline(ctx context.Context, work func() decoded) (decoded, error) {
	ctx, cancel := context.WithTimeout(ctx, is.timeout)
	defer cancel()

	done := make(chan decoded, 1)
	go func() {
		done <- work()
	}()

	select {
	case res := <-done:
		return res, res.err
	case <-ctx.Done():
		return decoded{}, fmt.Errorf("decode image: %w", ctx.Err())
	}
}

func readSource(src Source) ([]byte, error) {
	reader, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

func decodeData(url string) decoded {
	data, err := dataurl.Decode(url)
	if err != nil {
		return decoded{err: err}
	}
	_, format, _ := image.DecodeConfig(bytes.NewReader(data))
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return decoded{err: fmt.Errorf("failed to decode image: %w", err)}
	}
	return decoded{img: img, format: format}
}

func (is *InputService) begin(ctx context.Context) (context.Context, uint64) {
	is.mu.Lock()
	defer is.mu.Unlock()

	if is.cancel != nil {
		is.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	is.generation++
	is.cancel = cancel
	return ctx, is.generation
}

func (is *InputService) finish(ticket uint64) {
	is.mu.Lock()
	defer is.mu.Unlock()

	if ticket == is.generation && is.cancel != nil {
		is.cancel()
		is.cancel = nil
	}
}

func (is *InputService) current(ticket uint64) bool {
	is.mu.Lock()
	defer is.mu.Unlock()
	return ticket == is.generation
}

// Shutdown cancels any decode in flight.
func (is *InputService) Shutdown() {
	is.mu.Lock()
	defer is.mu.Unlock()

	if is.cancel != nil {
		is.cancel()
		is.cancel = nil
	}
}

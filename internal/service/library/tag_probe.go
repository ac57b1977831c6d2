package library

//go:generate $MOCKGEN -source=tag_probe.go -destination=mocks/tag_probe_mock.go

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/oshokin/id3v2/v2"

	"github.com/sann404/sannmusic/internal/constants"
	"github.com/sann404/sannmusic/internal/logger"
)

// TagProbe extracts display metadata from audio payloads.
type TagProbe interface {
	// Probe reads embedded tags from the payload. The hint names the
	// expected container format ("mp3" or "flac").
	Probe(ctx context.Context, payload []byte, hint string) (*TagInfo, error)
}

// TagInfo holds metadata extracted from an audio payload.
type TagInfo struct {
	// Title is the embedded track title, if any.
	Title string
	// Artist is the embedded track artist, if any.
	Artist string
	// ImageDataURI is the embedded cover art as a base64 data URI, if any.
	ImageDataURI string
}

// Probe format hints.
const (
	probeHintMP3  = "mp3"
	probeHintFLAC = "flac"
)

// ErrUnknownAudioFormat indicates the payload format could not be
// determined, so no tags were probed.
var ErrUnknownAudioFormat = errors.New("unknown audio format")

// TagProbeImpl provides the default implementation of TagProbe.
type TagProbeImpl struct{}

// NewTagProbe creates a new TagProbe instance.
func NewTagProbe() TagProbe {
	return new(TagProbeImpl)
}

// Probe reads embedded tags from the payload.
func (p *TagProbeImpl) Probe(ctx context.Context, payload []byte, hint string) (*TagInfo, error) {
	switch hint {
	case probeHintMP3:
		return p.probeMP3(payload)
	case probeHintFLAC:
		return p.probeFLAC(ctx, payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAudioFormat, hint)
	}
}

// probeMP3 reads the ID3v2 header of an MP3 payload.
func (p *TagProbeImpl) probeMP3(payload []byte) (*TagInfo, error) {
	tag, err := id3v2.ParseReader(bytes.NewReader(payload), id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to parse ID3v2 tag: %w", err)
	}

	return &TagInfo{
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
	}, nil
}

// probeFLAC reads the Vorbis comment and picture blocks of a FLAC payload.
func (p *TagProbeImpl) probeFLAC(ctx context.Context, payload []byte) (*TagInfo, error) {
	file, err := flac.ParseBytes(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC container: %w", err)
	}

	info := new(TagInfo)

	for _, meta := range file.Meta {
		switch meta.Type {
		case flac.VorbisComment:
			comment, parseErr := flacvorbis.ParseFromMetaDataBlock(*meta)
			if parseErr != nil {
				logger.Debugf(ctx, "Skipping unreadable Vorbis comment block: %v", parseErr)

				continue
			}

			info.Title = firstVorbisField(comment, flacvorbis.FIELD_TITLE)
			info.Artist = firstVorbisField(comment, flacvorbis.FIELD_ARTIST)
		case flac.Picture:
			if info.ImageDataURI != "" {
				continue
			}

			picture, parseErr := flacpicture.ParseFromMetaDataBlock(*meta)
			if parseErr != nil {
				logger.Debugf(ctx, "Skipping unreadable picture block: %v", parseErr)

				continue
			}

			info.ImageDataURI = imageDataURI(picture.MIME, picture.ImageData)
		}
	}

	return info, nil
}

// firstVorbisField returns the first value of a Vorbis comment field.
func firstVorbisField(comment *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := comment.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}

	return strings.TrimSpace(values[0])
}

// imageDataURI encodes image bytes as a base64 data URI.
func imageDataURI(mimeType string, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// probeHint derives the container format from the audio URL and the cached
// content type.
func probeHint(audioURL, contentType string) string {
	switch strings.ToLower(path.Ext(trimQuery(audioURL))) {
	case constants.ExtensionMP3:
		return probeHintMP3
	case constants.ExtensionFLAC:
		return probeHintFLAC
	}

	switch {
	case strings.Contains(contentType, "mpeg"):
		return probeHintMP3
	case strings.Contains(contentType, "flac"):
		return probeHintFLAC
	default:
		return ""
	}
}

// trimQuery drops the query string of a raw URL.
func trimQuery(rawURL string) string {
	if index := strings.IndexByte(rawURL, '?'); index >= 0 {
		return rawURL[:index]
	}

	return rawURL
}

package video

import "github.com/google/uuid"

// MediaStatus is the encoding state of an audio-video media.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
	MediaStatusError      MediaStatus = "ERROR"
)

// MediaType names one of the five media slots of a Video.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

func (t MediaType) String() string { return string(t) }

// Resource is a raw upload payload before it is stored. It is never
// persisted directly; the media storage turns it into an AudioVideoMedia
// or ImageMedia.
type Resource struct {
	content     []byte
	checksum    string
	contentType string
	name        string
}

// NewResource creates a Resource from upload data.
func NewResource(content []byte, checksum, contentType, name string) Resource {
	return Resource{
		content:     content,
		checksum:    checksum,
		contentType: contentType,
		name:        name,
	}
}

// Content returns the raw bytes.
func (r Resource) Content() []byte { return r.content }

// Checksum returns the content checksum.
func (r Resource) Checksum() string { return r.checksum }

// ContentType returns the MIME type.
func (r Resource) ContentType() string { return r.contentType }

// Name returns the original file name.
func (r Resource) Name() string { return r.name }

// AudioVideoMedia is a stored video or trailer file. Two instances with
// the same checksum and raw location describe the same stored content and
// compare equal regardless of their generated id or name.
type AudioVideoMedia struct {
	id              string
	checksum        string
	name            string
	rawLocation     string
	encodedLocation string
	status          MediaStatus
}

// NewAudioVideoMedia creates a freshly stored media, pending encode.
func NewAudioVideoMedia(checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		id:          uuid.NewString(),
		checksum:    checksum,
		name:        name,
		rawLocation: rawLocation,
		status:      MediaStatusPending,
	}
}

// AudioVideoMediaWith rehydrates a media from stored state.
func AudioVideoMediaWith(id, checksum, name, rawLocation, encodedLocation string, status MediaStatus) AudioVideoMedia {
	return AudioVideoMedia{
		id:              id,
		checksum:        checksum,
		name:            name,
		rawLocation:     rawLocation,
		encodedLocation: encodedLocation,
		status:          status,
	}
}

// ID returns the generated media id.
func (m AudioVideoMedia) ID() string { return m.id }

// Checksum returns the content checksum.
func (m AudioVideoMedia) Checksum() string { return m.checksum }

// Name returns the stored file name.
func (m AudioVideoMedia) Name() string { return m.name }

// RawLocation returns where the original upload is stored.
func (m AudioVideoMedia) RawLocation() string { return m.rawLocation }

// EncodedLocation returns where the encoded output is stored. Blank until
// encoding completes.
func (m AudioVideoMedia) EncodedLocation() string { return m.encodedLocation }

// Status returns the encoding status.
func (m AudioVideoMedia) Status() MediaStatus { return m.status }

// IsPendingEncode reports whether the media still waits for the encoder.
func (m AudioVideoMedia) IsPendingEncode() bool { return m.status == MediaStatusPending }

// Processing returns a copy marked as being encoded.
func (m AudioVideoMedia) Processing() AudioVideoMedia {
	m.status = MediaStatusProcessing
	return m
}

// Completed returns a copy marked as encoded, with the encoded location.
func (m AudioVideoMedia) Completed(encodedLocation string) AudioVideoMedia {
	m.status = MediaStatusCompleted
	m.encodedLocation = encodedLocation
	return m
}

// Failed returns a copy marked as failed to encode.
func (m AudioVideoMedia) Failed() AudioVideoMedia {
	m.status = MediaStatusError
	return m
}

// Equals compares by content identity: checksum plus raw location.
func (m AudioVideoMedia) Equals(other AudioVideoMedia) bool {
	return m.checksum == other.checksum && m.rawLocation == other.rawLocation
}

// ImageMedia is a stored banner or thumbnail. Equality is by checksum plus
// location, same dedup key as AudioVideoMedia.
type ImageMedia struct {
	id       string
	checksum string
	name     string
	location string
}

// NewImageMedia creates a freshly stored image media.
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{
		id:       uuid.NewString(),
		checksum: checksum,
		name:     name,
		location: location,
	}
}

// ImageMediaWith rehydrates an image media from stored state.
func ImageMediaWith(id, checksum, name, location string) ImageMedia {
	return ImageMedia{id: id, checksum: checksum, name: name, location: location}
}

// ID returns the generated media id.
func (m ImageMedia) ID() string { return m.id }

// Checksum returns the content checksum.
func (m ImageMedia) Checksum() string { return m.checksum }

// Name returns the stored file name.
func (m ImageMedia) Name() string { return m.name }

// Location returns where the image is stored.
func (m ImageMedia) Location() string { return m.location }

// Equals compares by content identity: checksum plus location.
func (m ImageMedia) Equals(other ImageMedia) bool {
	return m.checksum == other.checksum && m.location == other.location
}

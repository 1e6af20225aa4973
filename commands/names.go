package commands

import (
	"fmt"
	"time"

	"github.com/ccfrost/vkbackup/commands/vk"
)

// SuffixPolicy decides when a photo's file name gets a disambiguating
// timestamp suffix, based on how many photos in the set share its like count.
//
// The two policies differ only for a frequency of zero, which cannot occur
// for a photo drawn from the set itself; both are kept because the two backup
// pipelines historically used different thresholds, and each pipeline names
// its policy explicitly.
type SuffixPolicy int

const (
	// SuffixNonUnique adds the suffix whenever the like count does not
	// occur exactly once in the set. Used by the Yandex Disk pipeline.
	SuffixNonUnique SuffixPolicy = iota

	// SuffixRepeated adds the suffix only when the like count occurs more
	// than once. Used by the Google Drive pipeline.
	SuffixRepeated
)

const nameTimestampLayout = "2006-01-02_15-04-05"

// likeCountFrequency counts how often each like count occurs in the set.
func likeCountFrequency(photos []vk.Photo) map[int]int {
	freq := make(map[int]int, len(photos))
	for _, p := range photos {
		freq[p.Likes]++
	}
	return freq
}

// photoFileName resolves a photo's file name. Photos with a like count unique
// within the set are named "<likes>_likes.jpg"; otherwise the photo's own
// upload time (local zone, second precision) disambiguates. Two photos that
// share both like count and upload timestamp still collide; accepted.
func photoFileName(photo vk.Photo, freq map[int]int, policy SuffixPolicy) string {
	count := freq[photo.Likes]

	var suffix bool
	switch policy {
	case SuffixRepeated:
		suffix = count > 1
	default:
		suffix = count != 1
	}

	if !suffix {
		return fmt.Sprintf("%d_likes.jpg", photo.Likes)
	}
	stamp := time.Unix(photo.Date, 0).Format(nameTimestampLayout)
	return fmt.Sprintf("%d_likes__%s.jpg", photo.Likes, stamp)
}

package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Display-only enrichment for search results. Ratings are synthesized
// deterministically from the bus identity so the same bus always shows
// the same rating; they carry no booking semantics.

var (
	ratedOperators    = regexp.MustCompile(`(?i)APSRTC|TSRTC|Orange|Kaveri|Morning|Garuda|Rajadhani`)
	bestsellerNames   = regexp.MustCompile(`(?i)Orange|Kaveri|APSRTC`)
	trustedOperators  = regexp.MustCompile(`(?i)APSRTC|TSRTC|Orange|Kaveri|VRL|Morning|Garuda|Rajadhani|SRS`)
	onTimeNames       = regexp.MustCompile(`(?i)Express|Super|Luxury|Rajadhani|Garuda`)
	chargingAmenities = regexp.MustCompile(`(?i)Express|Luxury|Garuda|Rajadhani|Orange|Kaveri|Morning`)
	waterAmenities    = regexp.MustCompile(`(?i)APSRTC|TSRTC|Morning|Orange|Komitla|SVKDT`)
)

// hashString is a 31x rolling hash over the bytes of s, truncated to 32
// bits at each step, absolute value taken at the end. The truncation is
// part of the contract: ratings must be stable across platforms.
func hashString(s string) int {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	n := int(h)
	if n < 0 {
		n = -n
	}
	return n
}

// MockRating returns a stable rating in [3.6, 4.9] for a bus. Cheaper
// fares and well-known operators nudge the rating up slightly.
func MockRating(bus Bus) float64 {
	key := fmt.Sprintf("%d-%s-%s-%s", bus.ID, bus.Name, bus.FromCity, bus.ToCity)
	h := hashString(key)
	rating := 4.1 + float64(h%8)/20
	if bus.Fare <= 600 {
		rating += 0.1
	}
	if ratedOperators.MatchString(bus.Name) {
		rating += 0.1
	}
	if rating < 3.6 {
		rating = 3.6
	}
	if rating > 4.9 {
		rating = 4.9
	}
	return rating
}

// MockRatingCount returns a stable review count in [200, 1999].
func MockRatingCount(bus Bus) int {
	return 200 + hashString(strconv.FormatInt(bus.ID, 10))%1800
}

// IsBestseller flags cheap or popular-operator trips for a badge.
func IsBestseller(bus Bus) bool {
	return bus.Fare <= 600 || bestsellerNames.MatchString(bus.Name)
}

// IsTrusted flags operators on the known-operator list.
func IsTrusted(bus Bus) bool {
	return trustedOperators.MatchString(bus.Name)
}

// IsOnTime flags premium services for an on-time badge.
func IsOnTime(bus Bus) bool {
	return onTimeNames.MatchString(bus.Name) || bus.Fare >= 600
}

// Amenities lists the amenity chips shown for a bus. Every bus gets AC.
func Amenities(bus Bus) []string {
	amenities := []string{"AC"}
	if chargingAmenities.MatchString(bus.Name) {
		amenities = append(amenities, "Charging")
	}
	if waterAmenities.MatchString(bus.Name) {
		amenities = append(amenities, "Water")
	}
	return amenities
}

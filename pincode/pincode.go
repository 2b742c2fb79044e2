package pincode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

// Lookup resolves an Indian postal code to a locality name and coordinates via
// the Google geocoding API.
func Lookup(ctx context.Context, code string) (types.PincodeInfo, error) {
	client, err := InitMapsClient()
	if err != nil {
		return types.PincodeInfo{}, err
	}

	req := &maps.GeocodingRequest{
		Address: code,
		Region:  "in",
		Components: map[maps.Component]string{
			maps.ComponentCountry: "IN",
		},
	}

	results, err := client.Geocode(ctx, req)
	if err != nil {
		return types.PincodeInfo{}, fmt.Errorf("geocoding pincode %s: %w", code, err)
	}
	if len(results) == 0 {
		return types.PincodeInfo{}, fmt.Errorf("no geocoding result for pincode %s", code)
	}

	loc := results[0].Geometry.Location
	return types.PincodeInfo{
		Pincode:  code,
		Locality: results[0].FormattedAddress,
		Lat:      loc.Lat,
		Lng:      loc.Lng,
	}, nil
}

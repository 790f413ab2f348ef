package mapdata

import "errors"

// Sentinel errors returned by Parse. Callers match them with errors.Is.
var (
	ErrNoProvinces     = errors.New("mapdata: map has no provinces")
	ErrUnknownTerrain  = errors.New("mapdata: unknown terrain")
	ErrUnknownUnit     = errors.New("mapdata: unknown unit type")
	ErrBadCoast        = errors.New("mapdata: bad coast entry")
	ErrUnknownProvince = errors.New("mapdata: unknown province")
)

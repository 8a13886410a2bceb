package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/HanHongChen/cnsim-ctl/constant"
	"github.com/HanHongChen/cnsim-ctl/model"
	"github.com/HanHongChen/cnsim-ctl/util"
	"github.com/free5gc/openapi/models"
)

// Load reads and validates the profile file at path. The returned registry
// points at the default profile.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var file model.ProfileFile
	if err := util.DecodeYaml(data, &file); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if len(file.Profiles) == 0 {
		return nil, &ConfigError{Path: path, Err: errors.New("no profiles defined")}
	}

	names, err := util.YamlMappingKeys(data, "profiles")
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	profiles := make(map[string]model.Profile, len(file.Profiles))
	for _, name := range names {
		profile, err := buildProfile(name, file.Profiles[name])
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		profiles[name] = *profile
	}

	if _, ok := profiles[constant.DEFAULT_PROFILE_NAME]; !ok {
		return nil, &ConfigError{
			Path: path,
			Err:  fmt.Errorf("profile %q not defined", constant.DEFAULT_PROFILE_NAME),
		}
	}

	return &Registry{
		names:    names,
		profiles: profiles,
		current:  constant.DEFAULT_PROFILE_NAME,
	}, nil
}

func missing(name, field string) error {
	return fmt.Errorf("profiles.%s.%s: required field missing", name, field)
}

func buildProfile(name string, ie model.ProfileIE) (*model.Profile, error) {
	switch {
	case ie.PlmnId == nil:
		return nil, missing(name, "plmn")
	case ie.PlmnId.Mcc == nil:
		return nil, missing(name, "plmn.mcc")
	case ie.PlmnId.Mnc == nil:
		return nil, missing(name, "plmn.mnc")
	case ie.Dnn == nil:
		return nil, missing(name, "dnn")
	case ie.Slice == nil:
		return nil, missing(name, "slice")
	case ie.Slice.Sst == nil:
		return nil, missing(name, "slice.sst")
	case ie.Slice.Sd == nil:
		return nil, missing(name, "slice.sd")
	case ie.NumUe == nil:
		return nil, missing(name, "numUe")
	case ie.GNBs == nil:
		return nil, missing(name, "gNBs")
	case ie.Rate == nil:
		return nil, missing(name, "rate")
	}

	if sst := *ie.Slice.Sst; sst < 0 || sst > 255 {
		return nil, fmt.Errorf("profiles.%s.slice: invalid sst %d: want 0-255", name, sst)
	}

	profile := &model.Profile{
		PlmnId: models.PlmnId{
			Mcc: *ie.PlmnId.Mcc,
			Mnc: *ie.PlmnId.Mnc,
		},
		Dnn: *ie.Dnn,
		Snssai: models.Snssai{
			Sst: int32(*ie.Slice.Sst),
			Sd:  *ie.Slice.Sd,
		},
		NumUe: *ie.NumUe,
		GNBs:  *ie.GNBs,
		Rate:  *ie.Rate,
	}

	if err := util.ValidatePlmnId(profile.PlmnId); err != nil {
		return nil, fmt.Errorf("profiles.%s.plmn: %w", name, err)
	}
	if err := util.ValidateSnssai(profile.Snssai); err != nil {
		return nil, fmt.Errorf("profiles.%s.slice: %w", name, err)
	}
	if profile.Dnn == "" {
		return nil, fmt.Errorf("profiles.%s.dnn: must not be empty", name)
	}
	if profile.NumUe <= 0 {
		return nil, fmt.Errorf("profiles.%s.numUe: must be positive, got %d", name, profile.NumUe)
	}
	if profile.GNBs <= 0 {
		return nil, fmt.Errorf("profiles.%s.gNBs: must be positive, got %d", name, profile.GNBs)
	}
	if profile.Rate < 0 {
		return nil, fmt.Errorf("profiles.%s.rate: must not be negative, got %d", name, profile.Rate)
	}

	return profile, nil
}

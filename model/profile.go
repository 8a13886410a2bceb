package model

import "github.com/free5gc/openapi/models"

type ProfileFile struct {
	Profiles map[string]ProfileIE `yaml:"profiles"`
}

type ProfileIE struct {
	PlmnId *PlmnIdIE `yaml:"plmn"`
	Dnn    *string   `yaml:"dnn"`
	Slice  *SliceIE  `yaml:"slice"`
	NumUe  *int      `yaml:"numUe"`
	GNBs   *int      `yaml:"gNBs"`
	Rate   *int      `yaml:"rate"`
}

// Profile is a validated simulation profile. It is never modified after
// the profile file is loaded.
type Profile struct {
	PlmnId models.PlmnId
	Dnn    string
	Snssai models.Snssai
	NumUe  int
	GNBs   int
	Rate   int
}

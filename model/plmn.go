package model

type PlmnIdIE struct {
	Mcc *string `yaml:"mcc"`
	Mnc *string `yaml:"mnc"`
}

type SliceIE struct {
	Sst *int    `yaml:"sst"`
	Sd  *string `yaml:"sd"`
}

package model

type ConfigureRequest struct {
	NumOfUe     int        `json:"numOfUe"`
	ArrivalRate int        `json:"arrivalRate"`
	Plmn        PlmnBody   `json:"plmn"`
	NumOfGnb    int        `json:"numOfgNB"`
	Slice       SnssaiBody `json:"slice"`
	Dnn         string     `json:"dnn"`
}

type PlmnBody struct {
	Mcc string `json:"mcc"`
	Mnc string `json:"mnc"`
}

type SnssaiBody struct {
	Sst int32  `json:"sst"`
	Sd  string `json:"sd"`
}

func NewConfigureRequest(profile *Profile) ConfigureRequest {
	return ConfigureRequest{
		NumOfUe:     profile.NumUe,
		ArrivalRate: profile.Rate,
		Plmn: PlmnBody{
			Mcc: profile.PlmnId.Mcc,
			Mnc: profile.PlmnId.Mnc,
		},
		NumOfGnb: profile.GNBs,
		Slice: SnssaiBody{
			Sst: profile.Snssai.Sst,
			Sd:  profile.Snssai.Sd,
		},
		Dnn: profile.Dnn,
	}
}

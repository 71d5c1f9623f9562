package report

import "github.com/yukikurage/kiroku/internal/symptom"

// Dataset is one line of the chart payload.
type Dataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// Chart is the payload consumed by the report visualization.
type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type datasetStyle struct {
	label      string
	border     string
	background string
}

var stiffnessStyles = map[symptom.Region]datasetStyle{
	symptom.RegionRightHand: {"右手のこわばり", "rgb(255, 99, 132)", "rgba(255, 99, 132, 0.2)"},
	symptom.RegionLeftHand:  {"左手のこわばり", "rgb(54, 162, 235)", "rgba(54, 162, 235, 0.2)"},
	symptom.RegionRightKnee: {"右膝のこわばり", "rgb(255, 159, 64)", "rgba(255, 159, 64, 0.2)"},
	symptom.RegionLeftKnee:  {"左膝のこわばり", "rgb(75, 192, 192)", "rgba(75, 192, 192, 0.2)"},
}

var numbnessStyle = datasetStyle{"しびれの強さ", "rgb(153, 102, 255)", "rgba(153, 102, 255, 0.2)"}

// Chart converts the series into the chart payload: the four stiffness
// regions in symptom.Regions order, then numbness.
func (s Series) Chart() Chart {
	datasets := make([]Dataset, 0, len(symptom.Regions)+1)
	for _, r := range symptom.Regions {
		datasets = append(datasets, newDataset(stiffnessStyles[r], s.StiffnessData(r)))
	}
	datasets = append(datasets, newDataset(numbnessStyle, s.NumbnessData))

	return Chart{Labels: s.Labels, Datasets: datasets}
}

func newDataset(style datasetStyle, data []int) Dataset {
	return Dataset{
		Label:           style.label,
		Data:            data,
		BorderColor:     style.border,
		BackgroundColor: style.background,
	}
}

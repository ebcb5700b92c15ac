package heatmap

type Palette []string

// Temperature goes from cold blue to hot red in 15 steps.
var Temperature Palette

func init() {
	Temperature = splitColorString("0000ff0022ff0064ff00a4ff00e4ff00ff8317ff00b0ff00FFf000FFc800FFa000FF7800FF5000FF2800FF0000")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

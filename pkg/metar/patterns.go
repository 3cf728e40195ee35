package metar

import "regexp"

// Compiled token patterns shared across the field recognizers.
var (
	stationRegex = regexp.MustCompile(`^[A-Z0-9]{4}$`)
	timeRegex    = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)

	windRegex    = regexp.MustCompile(`^(VRB|\d{3})(\d{2,3})(G(\d{2,3}))?(KT|MPS)$`)
	windVarRegex = regexp.MustCompile(`^(\d{3})V(\d{3})$`)

	visMetersRegex = regexp.MustCompile(`^(\d{4})(NDV|[NESW]{1,2})?$`)
	visMilesRegex  = regexp.MustCompile(`^([MP]?)(\d+)(/(\d+))?SM$`)
	visWholeRegex  = regexp.MustCompile(`^\d{1,2}$`)

	tempRegex     = regexp.MustCompile(`^(M?\d{1,3})/(M?\d{1,3})$`)
	pressureRegex = regexp.MustCompile(`^([QA])(\d{4})$`)

	cloudRegex   = regexp.MustCompile(`^(FEW|SCT|BKN|OVC)(\d{3})(CB|TCU)?$`)
	vertVisRegex = regexp.MustCompile(`^VV(\d{3}|///)$`)

	runwayRegex = regexp.MustCompile(`^R(\d{2}[LCR]?)/(SNOCLO|CLRD(\d{2}|//)|[A-Z]{4}(\d{2}|//)|[\d/]{6})$`)

	trendRegex = regexp.MustCompile(`^(NOSIG|TEMPO|BECMG)$`)
)

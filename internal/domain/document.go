package domain

// DocumentExtension is the file extension telemetry documents are stored under.
const DocumentExtension = ".json"

// AllSectorsValid is the lap validity bit-mask value meaning every measured
// sub-sector of the lap was valid.
const AllSectorsValid = 15

// Document is a full recorded telemetry session. It is always handled
// wholesale: loaders replace it, they never patch it in place.
type Document struct {
	SessionInfo    SessionInfo           `json:"sessionInfo"`
	Classification []ClassificationEntry `json:"classificationData"`
}

// SessionInfo holds the session-wide configuration captured at recording time.
type SessionInfo struct {
	Track        string `json:"track,omitempty"`
	SessionType  string `json:"sessionType,omitempty"`
	Online       bool   `json:"online,omitempty"`
	AIDifficulty int    `json:"aiDifficulty,omitempty"`
	TotalLaps    int    `json:"totalLaps,omitempty"`
	Weather      string `json:"weather,omitempty"`
}

// ClassificationEntry is one driver's final classification plus their full
// per-lap histories.
type ClassificationEntry struct {
	DriverName    string            `json:"driverName"`
	TeamName      string            `json:"teamName,omitempty"`
	IsPlayer      bool              `json:"isPlayer,omitempty"`
	Position      int               `json:"position,omitempty"`
	GridPosition  int               `json:"gridPosition,omitempty"`
	ResultStatus  string            `json:"resultStatus,omitempty"`
	BestLapNum    int               `json:"bestLapNum,omitempty"`
	LapHistory    []LapHistoryEntry `json:"lapHistory,omitempty"`
	TyreStints    []TyreStint       `json:"tyreStints,omitempty"`
	DamageHistory []DamageSnapshot  `json:"damageHistory,omitempty"`
}

// LapHistoryEntry is one recorded lap. A lap time of zero means the lap never
// completed; BestLapNum on the classification entry is 1-based into this slice.
type LapHistoryEntry struct {
	LapTimeInMs      int64  `json:"lapTimeInMs"`
	LapTimeDisplay   string `json:"lapTimeDisplay,omitempty"`
	Sector1TimeInMs  int64  `json:"sector1TimeInMs,omitempty"`
	Sector2TimeInMs  int64  `json:"sector2TimeInMs,omitempty"`
	Sector3TimeInMs  int64  `json:"sector3TimeInMs,omitempty"`
	LapValidBitFlags int    `json:"lapValidBitFlags,omitempty"`
}

// TyreStint is a contiguous run of laps on one tyre set.
type TyreStint struct {
	Compound       string `json:"compound"`
	VisualCompound string `json:"visualCompound,omitempty"`
	StartLap       int    `json:"startLap"`
	EndLap         int    `json:"endLap,omitempty"`
}

// DamageSnapshot is the car damage state sampled at the end of a lap,
// values in percent.
type DamageSnapshot struct {
	Lap       int        `json:"lap"`
	FrontWing float64    `json:"frontWing,omitempty"`
	RearWing  float64    `json:"rearWing,omitempty"`
	Floor     float64    `json:"floor,omitempty"`
	TyreWear  [4]float64 `json:"tyreWear,omitempty"`
}

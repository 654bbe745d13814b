package domain

// ZodiacSign is an optional profile attribute used to flavor prompts.
type ZodiacSign string

const (
	ZodiacAries       ZodiacSign = "ARIES"
	ZodiacTaurus      ZodiacSign = "TAURUS"
	ZodiacGemini      ZodiacSign = "GEMINI"
	ZodiacCancer      ZodiacSign = "CANCER"
	ZodiacLeo         ZodiacSign = "LEO"
	ZodiacVirgo       ZodiacSign = "VIRGO"
	ZodiacLibra       ZodiacSign = "LIBRA"
	ZodiacScorpio     ZodiacSign = "SCORPIO"
	ZodiacSagittarius ZodiacSign = "SAGITTARIUS"
	ZodiacCapricorn   ZodiacSign = "CAPRICORN"
	ZodiacAquarius    ZodiacSign = "AQUARIUS"
	ZodiacPisces      ZodiacSign = "PISCES"
)

func (z ZodiacSign) String() string { return string(z) }

func (z ZodiacSign) IsValid() bool {
	switch z {
	case ZodiacAries, ZodiacTaurus, ZodiacGemini, ZodiacCancer,
		ZodiacLeo, ZodiacVirgo, ZodiacLibra, ZodiacScorpio,
		ZodiacSagittarius, ZodiacCapricorn, ZodiacAquarius, ZodiacPisces:
		return true
	}
	return false
}

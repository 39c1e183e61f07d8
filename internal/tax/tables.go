package tax

import "MoneyMarketOptimizer/internal/model"

// Tables is the immutable set of bracket schedules consulted by the resolver.
// Federal schedules are keyed by filing status; each state has one schedule.
type Tables struct {
	Federal map[model.FilingStatus]model.BracketTable
	States  map[model.Jurisdiction]model.BracketTable
}

func flat(rate float64) model.BracketTable {
	return model.BracketTable{{LowerBound: 0, Rate: rate}}
}

// DefaultTables returns the built-in 2024 schedules. State schedules use the
// single-filer brackets. States without a broad personal income tax carry a
// single 0% bracket.
func DefaultTables() *Tables {
	return &Tables{
		Federal: map[model.FilingStatus]model.BracketTable{
			model.Single: {
				{LowerBound: 0, Rate: 0.10}, {LowerBound: 11600, Rate: 0.12}, {LowerBound: 47150, Rate: 0.22}, {LowerBound: 100525, Rate: 0.24},
				{LowerBound: 191950, Rate: 0.32}, {LowerBound: 243725, Rate: 0.35}, {LowerBound: 609350, Rate: 0.37},
			},
			model.MarriedJoint: {
				{LowerBound: 0, Rate: 0.10}, {LowerBound: 23200, Rate: 0.12}, {LowerBound: 94300, Rate: 0.22}, {LowerBound: 201050, Rate: 0.24},
				{LowerBound: 383900, Rate: 0.32}, {LowerBound: 487450, Rate: 0.35}, {LowerBound: 731200, Rate: 0.37},
			},
			model.MarriedSeparate: {
				{LowerBound: 0, Rate: 0.10}, {LowerBound: 11600, Rate: 0.12}, {LowerBound: 47150, Rate: 0.22}, {LowerBound: 100525, Rate: 0.24},
				{LowerBound: 191950, Rate: 0.32}, {LowerBound: 243725, Rate: 0.35}, {LowerBound: 365600, Rate: 0.37},
			},
			model.HeadOfHousehold: {
				{LowerBound: 0, Rate: 0.10}, {LowerBound: 16550, Rate: 0.12}, {LowerBound: 63100, Rate: 0.22}, {LowerBound: 100500, Rate: 0.24},
				{LowerBound: 191950, Rate: 0.32}, {LowerBound: 243700, Rate: 0.35}, {LowerBound: 609350, Rate: 0.37},
			},
		},
		States: map[model.Jurisdiction]model.BracketTable{
			model.AL: {{LowerBound: 0, Rate: 0.02}, {LowerBound: 500, Rate: 0.04}, {LowerBound: 3000, Rate: 0.05}},
			model.AK: flat(0),
			model.AZ: flat(0.025),
			model.AR: {{LowerBound: 0, Rate: 0}, {LowerBound: 5500, Rate: 0.02}, {LowerBound: 10900, Rate: 0.03}, {LowerBound: 15600, Rate: 0.034}, {LowerBound: 25700, Rate: 0.039}},
			model.CA: {
				{LowerBound: 0, Rate: 0.01}, {LowerBound: 10756, Rate: 0.02}, {LowerBound: 25499, Rate: 0.04}, {LowerBound: 40245, Rate: 0.06}, {LowerBound: 55866, Rate: 0.08},
				{LowerBound: 70606, Rate: 0.093}, {LowerBound: 360659, Rate: 0.103}, {LowerBound: 432787, Rate: 0.113}, {LowerBound: 721314, Rate: 0.123}, {LowerBound: 1000000, Rate: 0.133},
			},
			model.CO: flat(0.0425),
			model.CT: {{LowerBound: 0, Rate: 0.02}, {LowerBound: 10000, Rate: 0.045}, {LowerBound: 50000, Rate: 0.055}, {LowerBound: 100000, Rate: 0.06}, {LowerBound: 200000, Rate: 0.065}, {LowerBound: 250000, Rate: 0.069}, {LowerBound: 500000, Rate: 0.0699}},
			model.DE: {{LowerBound: 0, Rate: 0}, {LowerBound: 2000, Rate: 0.022}, {LowerBound: 5000, Rate: 0.039}, {LowerBound: 10000, Rate: 0.048}, {LowerBound: 20000, Rate: 0.052}, {LowerBound: 25000, Rate: 0.0555}, {LowerBound: 60000, Rate: 0.066}},
			model.DC: {{LowerBound: 0, Rate: 0.04}, {LowerBound: 10000, Rate: 0.06}, {LowerBound: 40000, Rate: 0.065}, {LowerBound: 60000, Rate: 0.085}, {LowerBound: 250000, Rate: 0.0925}, {LowerBound: 500000, Rate: 0.0975}, {LowerBound: 1000000, Rate: 0.1075}},
			model.FL: flat(0),
			model.GA: flat(0.0539),
			model.HI: {
				{LowerBound: 0, Rate: 0.014}, {LowerBound: 2400, Rate: 0.032}, {LowerBound: 4800, Rate: 0.055}, {LowerBound: 9600, Rate: 0.064}, {LowerBound: 14400, Rate: 0.068}, {LowerBound: 19200, Rate: 0.072},
				{LowerBound: 24000, Rate: 0.076}, {LowerBound: 36000, Rate: 0.079}, {LowerBound: 48000, Rate: 0.0825}, {LowerBound: 150000, Rate: 0.09}, {LowerBound: 175000, Rate: 0.10}, {LowerBound: 200000, Rate: 0.11},
			},
			model.ID: {{LowerBound: 0, Rate: 0}, {LowerBound: 4673, Rate: 0.05695}},
			model.IL: flat(0.0495),
			model.IN: flat(0.0305),
			model.IA: {{LowerBound: 0, Rate: 0.044}, {LowerBound: 6210, Rate: 0.0482}, {LowerBound: 31050, Rate: 0.057}},
			model.KS: {{LowerBound: 0, Rate: 0.031}, {LowerBound: 15000, Rate: 0.0525}, {LowerBound: 30000, Rate: 0.057}},
			model.KY: flat(0.04),
			model.LA: {{LowerBound: 0, Rate: 0.0185}, {LowerBound: 12500, Rate: 0.035}, {LowerBound: 50000, Rate: 0.0425}},
			model.ME: {{LowerBound: 0, Rate: 0.058}, {LowerBound: 26050, Rate: 0.0675}, {LowerBound: 61600, Rate: 0.0715}},
			model.MD: {{LowerBound: 0, Rate: 0.02}, {LowerBound: 1000, Rate: 0.03}, {LowerBound: 2000, Rate: 0.04}, {LowerBound: 3000, Rate: 0.0475}, {LowerBound: 100000, Rate: 0.05}, {LowerBound: 125000, Rate: 0.0525}, {LowerBound: 150000, Rate: 0.055}, {LowerBound: 250000, Rate: 0.0575}},
			model.MA: {{LowerBound: 0, Rate: 0.05}, {LowerBound: 1053750, Rate: 0.09}},
			model.MI: flat(0.0425),
			model.MN: {{LowerBound: 0, Rate: 0.0535}, {LowerBound: 31690, Rate: 0.068}, {LowerBound: 104090, Rate: 0.0785}, {LowerBound: 193240, Rate: 0.0985}},
			model.MS: {{LowerBound: 0, Rate: 0}, {LowerBound: 10000, Rate: 0.047}},
			model.MO: {{LowerBound: 0, Rate: 0}, {LowerBound: 1273, Rate: 0.02}, {LowerBound: 2546, Rate: 0.025}, {LowerBound: 3819, Rate: 0.03}, {LowerBound: 5092, Rate: 0.035}, {LowerBound: 6365, Rate: 0.04}, {LowerBound: 7638, Rate: 0.045}, {LowerBound: 8911, Rate: 0.048}},
			model.MT: {{LowerBound: 0, Rate: 0.047}, {LowerBound: 20500, Rate: 0.059}},
			model.NE: {{LowerBound: 0, Rate: 0.0246}, {LowerBound: 3700, Rate: 0.0351}, {LowerBound: 22170, Rate: 0.0501}, {LowerBound: 35730, Rate: 0.0584}},
			model.NV: flat(0),
			// Interest and dividends tax only, which is what fund distributions are.
			model.NH: flat(0.03),
			model.NJ: {{LowerBound: 0, Rate: 0.014}, {LowerBound: 20000, Rate: 0.0175}, {LowerBound: 35000, Rate: 0.035}, {LowerBound: 40000, Rate: 0.05525}, {LowerBound: 75000, Rate: 0.0637}, {LowerBound: 500000, Rate: 0.0897}, {LowerBound: 1000000, Rate: 0.1075}},
			model.NM: {{LowerBound: 0, Rate: 0.017}, {LowerBound: 5500, Rate: 0.032}, {LowerBound: 11000, Rate: 0.047}, {LowerBound: 16000, Rate: 0.049}, {LowerBound: 210000, Rate: 0.059}},
			model.NY: {
				{LowerBound: 0, Rate: 0.04}, {LowerBound: 8500, Rate: 0.045}, {LowerBound: 11700, Rate: 0.0525}, {LowerBound: 13900, Rate: 0.055}, {LowerBound: 80650, Rate: 0.06},
				{LowerBound: 215400, Rate: 0.0685}, {LowerBound: 1077550, Rate: 0.0965}, {LowerBound: 5000000, Rate: 0.103}, {LowerBound: 25000000, Rate: 0.109},
			},
			model.NC: flat(0.045),
			model.ND: {{LowerBound: 0, Rate: 0}, {LowerBound: 47150, Rate: 0.0195}, {LowerBound: 238200, Rate: 0.025}},
			model.OH: {{LowerBound: 0, Rate: 0}, {LowerBound: 26050, Rate: 0.0275}, {LowerBound: 100000, Rate: 0.035}},
			model.OK: {{LowerBound: 0, Rate: 0.0025}, {LowerBound: 1000, Rate: 0.0075}, {LowerBound: 2500, Rate: 0.0175}, {LowerBound: 3750, Rate: 0.0275}, {LowerBound: 4900, Rate: 0.0375}, {LowerBound: 7200, Rate: 0.0475}},
			model.OR: {{LowerBound: 0, Rate: 0.0475}, {LowerBound: 4300, Rate: 0.0675}, {LowerBound: 10750, Rate: 0.0875}, {LowerBound: 125000, Rate: 0.099}},
			model.PA: flat(0.0307),
			model.RI: {{LowerBound: 0, Rate: 0.0375}, {LowerBound: 77450, Rate: 0.0475}, {LowerBound: 176050, Rate: 0.0599}},
			model.SC: {{LowerBound: 0, Rate: 0}, {LowerBound: 3460, Rate: 0.03}, {LowerBound: 17330, Rate: 0.064}},
			model.SD: flat(0),
			model.TN: flat(0),
			model.TX: flat(0),
			model.UT: flat(0.0455),
			model.VT: {{LowerBound: 0, Rate: 0.0335}, {LowerBound: 45400, Rate: 0.066}, {LowerBound: 110050, Rate: 0.076}, {LowerBound: 229550, Rate: 0.0875}},
			model.VA: {{LowerBound: 0, Rate: 0.02}, {LowerBound: 3000, Rate: 0.03}, {LowerBound: 5000, Rate: 0.05}, {LowerBound: 17000, Rate: 0.0575}},
			model.WA: flat(0),
			model.WV: {{LowerBound: 0, Rate: 0.0236}, {LowerBound: 10000, Rate: 0.0315}, {LowerBound: 25000, Rate: 0.0354}, {LowerBound: 40000, Rate: 0.0472}, {LowerBound: 60000, Rate: 0.0512}},
			model.WI: {{LowerBound: 0, Rate: 0.035}, {LowerBound: 14320, Rate: 0.044}, {LowerBound: 28640, Rate: 0.053}, {LowerBound: 315310, Rate: 0.0765}},
			model.WY: flat(0),
		},
	}
}

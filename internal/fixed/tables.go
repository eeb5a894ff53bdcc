package fixed

// Trigonometry is table driven with literal values so that every platform
// computes identical angles.

// quarterSine holds sin((i+0.5)*2*pi/FineAngles) for the first quarter turn.
var quarterSine = [FineAngles / 4]Fixed{
	25, 75, 125, 175, 226, 276, 326, 376, 427, 477,
	527, 578, 628, 678, 728, 779, 829, 879, 929, 980,
	1030, 1080, 1130, 1181, 1231, 1281, 1331, 1382, 1432, 1482,
	1532, 1583, 1633, 1683, 1733, 1784, 1834, 1884, 1934, 1985,
	2035, 2085, 2135, 2186, 2236, 2286, 2336, 2387, 2437, 2487,
	2537, 2587, 2638, 2688, 2738, 2788, 2839, 2889, 2939, 2989,
	3039, 3090, 3140, 3190, 3240, 3291, 3341, 3391, 3441, 3491,
	3541, 3592, 3642, 3692, 3742, 3792, 3843, 3893, 3943, 3993,
	4043, 4093, 4144, 4194, 4244, 4294, 4344, 4394, 4445, 4495,
	4545, 4595, 4645, 4695, 4745, 4796, 4846, 4896, 4946, 4996,
	5046, 5096, 5146, 5197, 5247, 5297, 5347, 5397, 5447, 5497,
	5547, 5597, 5647, 5697, 5748, 5798, 5848, 5898, 5948, 5998,
	6048, 6098, 6148, 6198, 6248, 6298, 6348, 6398, 6448, 6498,
	6548, 6598, 6648, 6698, 6748, 6798, 6848, 6898, 6948, 6998,
	7048, 7098, 7148, 7198, 7248, 7298, 7348, 7398, 7448, 7498,
	7548, 7598, 7648, 7697, 7747, 7797, 7847, 7897, 7947, 7997,
	8047, 8097, 8147, 8196, 8246, 8296, 8346, 8396, 8446, 8496,
	8545, 8595, 8645, 8695, 8745, 8794, 8844, 8894, 8944, 8994,
	9043, 9093, 9143, 9193, 9243, 9292, 9342, 9392, 9442, 9491,
	9541, 9591, 9640, 9690, 9740, 9790, 9839, 9889, 9939, 9988,
	10038, 10088, 10137, 10187, 10237, 10286, 10336, 10386, 10435, 10485,
	10534, 10584, 10634, 10683, 10733, 10782, 10832, 10882, 10931, 10981,
	11030, 11080, 11129, 11179, 11228, 11278, 11327, 11377, 11426, 11476,
	11525, 11575, 11624, 11674, 11723, 11773, 11822, 11872, 11921, 11970,
	12020, 12069, 12119, 12168, 12218, 12267, 12316, 12366, 12415, 12464,
	12514, 12563, 12612, 12662, 12711, 12760, 12810, 12859, 12908, 12957,
	13007, 13056, 13105, 13154, 13204, 13253, 13302, 13351, 13401, 13450,
	13499, 13548, 13597, 13647, 13696, 13745, 13794, 13843, 13892, 13941,
	13990, 14040, 14089, 14138, 14187, 14236, 14285, 14334, 14383, 14432,
	14481, 14530, 14579, 14628, 14677, 14726, 14775, 14824, 14873, 14922,
	14971, 15020, 15069, 15118, 15167, 15215, 15264, 15313, 15362, 15411,
	15460, 15509, 15557, 15606, 15655, 15704, 15753, 15802, 15850, 15899,
	15948, 15997, 16045, 16094, 16143, 16191, 16240, 16289, 16338, 16386,
	16435, 16484, 16532, 16581, 16629, 16678, 16727, 16775, 16824, 16872,
	16921, 16970, 17018, 17067, 17115, 17164, 17212, 17261, 17309, 17358,
	17406, 17455, 17503, 17551, 17600, 17648, 17697, 17745, 17793, 17842,
	17890, 17939, 17987, 18035, 18084, 18132, 18180, 18228, 18277, 18325,
	18373, 18421, 18470, 18518, 18566, 18614, 18663, 18711, 18759, 18807,
	18855, 18903, 18951, 19000, 19048, 19096, 19144, 19192, 19240, 19288,
	19336, 19384, 19432, 19480, 19528, 19576, 19624, 19672, 19720, 19768,
	19816, 19864, 19912, 19959, 20007, 20055, 20103, 20151, 20199, 20246,
	20294, 20342, 20390, 20438, 20485, 20533, 20581, 20629, 20676, 20724,
	20772, 20819, 20867, 20915, 20962, 21010, 21057, 21105, 21153, 21200,
	21248, 21295, 21343, 21390, 21438, 21485, 21533, 21580, 21628, 21675,
	21723, 21770, 21817, 21865, 21912, 21960, 22007, 22054, 22102, 22149,
	22196, 22243, 22291, 22338, 22385, 22432, 22480, 22527, 22574, 22621,
	22668, 22716, 22763, 22810, 22857, 22904, 22951, 22998, 23045, 23092,
	23139, 23186, 23233, 23280, 23327, 23374, 23421, 23468, 23515, 23562,
	23609, 23656, 23703, 23750, 23796, 23843, 23890, 23937, 23984, 24030,
	24077, 24124, 24171, 24217, 24264, 24311, 24357, 24404, 24451, 24497,
	24544, 24591, 24637, 24684, 24730, 24777, 24823, 24870, 24916, 24963,
	25009, 25056, 25102, 25149, 25195, 25241, 25288, 25334, 25381, 25427,
	25473, 25520, 25566, 25612, 25658, 25705, 25751, 25797, 25843, 25889,
	25936, 25982, 26028, 26074, 26120, 26166, 26212, 26258, 26304, 26350,
	26396, 26442, 26488, 26534, 26580, 26626, 26672, 26718, 26764, 26810,
	26856, 26902, 26947, 26993, 27039, 27085, 27131, 27176, 27222, 27268,
	27313, 27359, 27405, 27450, 27496, 27542, 27587, 27633, 27678, 27724,
	27770, 27815, 27861, 27906, 27952, 27997, 28042, 28088, 28133, 28179,
	28224, 28269, 28315, 28360, 28405, 28451, 28496, 28541, 28586, 28632,
	28677, 28722, 28767, 28812, 28858, 28903, 28948, 28993, 29038, 29083,
	29128, 29173, 29218, 29263, 29308, 29353, 29398, 29443, 29488, 29533,
	29577, 29622, 29667, 29712, 29757, 29801, 29846, 29891, 29936, 29980,
	30025, 30070, 30114, 30159, 30204, 30248, 30293, 30337, 30382, 30426,
	30471, 30515, 30560, 30604, 30649, 30693, 30738, 30782, 30826, 30871,
	30915, 30959, 31004, 31048, 31092, 31136, 31181, 31225, 31269, 31313,
	31357, 31402, 31446, 31490, 31534, 31578, 31622, 31666, 31710, 31754,
	31798, 31842, 31886, 31930, 31974, 32017, 32061, 32105, 32149, 32193,
	32236, 32280, 32324, 32368, 32411, 32455, 32499, 32542, 32586, 32630,
	32673, 32717, 32760, 32804, 32847, 32891, 32934, 32978, 33021, 33065,
	33108, 33151, 33195, 33238, 33281, 33325, 33368, 33411, 33454, 33498,
	33541, 33584, 33627, 33670, 33713, 33756, 33799, 33843, 33886, 33929,
	33972, 34015, 34057, 34100, 34143, 34186, 34229, 34272, 34315, 34358,
	34400, 34443, 34486, 34529, 34571, 34614, 34657, 34699, 34742, 34785,
	34827, 34870, 34912, 34955, 34997, 35040, 35082, 35125, 35167, 35210,
	35252, 35294, 35337, 35379, 35421, 35464, 35506, 35548, 35590, 35633,
	35675, 35717, 35759, 35801, 35843, 35885, 35927, 35969, 36011, 36053,
	36095, 36137, 36179, 36221, 36263, 36305, 36347, 36388, 36430, 36472,
	36514, 36555, 36597, 36639, 36681, 36722, 36764, 36805, 36847, 36889,
	36930, 36972, 37013, 37055, 37096, 37137, 37179, 37220, 37262, 37303,
	37344, 37386, 37427, 37468, 37509, 37551, 37592, 37633, 37674, 37715,
	37756, 37797, 37838, 37879, 37920, 37961, 38002, 38043, 38084, 38125,
	38166, 38207, 38248, 38288, 38329, 38370, 38411, 38451, 38492, 38533,
	38573, 38614, 38655, 38695, 38736, 38776, 38817, 38857, 38898, 38938,
	38979, 39019, 39059, 39100, 39140, 39180, 39221, 39261, 39301, 39341,
	39382, 39422, 39462, 39502, 39542, 39582, 39622, 39662, 39702, 39742,
	39782, 39822, 39862, 39902, 39942, 39982, 40021, 40061, 40101, 40141,
	40180, 40220, 40260, 40300, 40339, 40379, 40418, 40458, 40497, 40537,
	40576, 40616, 40655, 40695, 40734, 40773, 40813, 40852, 40891, 40931,
	40970, 41009, 41048, 41087, 41127, 41166, 41205, 41244, 41283, 41322,
	41361, 41400, 41439, 41478, 41517, 41556, 41595, 41633, 41672, 41711,
	41750, 41788, 41827, 41866, 41904, 41943, 41982, 42020, 42059, 42097,
	42136, 42174, 42213, 42251, 42290, 42328, 42366, 42405, 42443, 42481,
	42520, 42558, 42596, 42634, 42672, 42711, 42749, 42787, 42825, 42863,
	42901, 42939, 42977, 43015, 43053, 43091, 43128, 43166, 43204, 43242,
	43280, 43317, 43355, 43393, 43430, 43468, 43506, 43543, 43581, 43618,
	43656, 43693, 43731, 43768, 43806, 43843, 43880, 43918, 43955, 43992,
	44029, 44067, 44104, 44141, 44178, 44215, 44252, 44289, 44326, 44363,
	44400, 44437, 44474, 44511, 44548, 44585, 44622, 44659, 44695, 44732,
	44769, 44806, 44842, 44879, 44915, 44952, 44989, 45025, 45062, 45098,
	45135, 45171, 45207, 45244, 45280, 45316, 45353, 45389, 45425, 45462,
	45498, 45534, 45570, 45606, 45642, 45678, 45714, 45750, 45786, 45822,
	45858, 45894, 45930, 45966, 46002, 46037, 46073, 46109, 46145, 46180,
	46216, 46252, 46287, 46323, 46358, 46394, 46429, 46465, 46500, 46536,
	46571, 46606, 46642, 46677, 46712, 46747, 46783, 46818, 46853, 46888,
	46923, 46958, 46993, 47028, 47063, 47098, 47133, 47168, 47203, 47238,
	47273, 47308, 47342, 47377, 47412, 47446, 47481, 47516, 47550, 47585,
	47619, 47654, 47688, 47723, 47757, 47792, 47826, 47860, 47895, 47929,
	47963, 47998, 48032, 48066, 48100, 48134, 48168, 48202, 48237, 48271,
	48304, 48338, 48372, 48406, 48440, 48474, 48508, 48542, 48575, 48609,
	48643, 48676, 48710, 48744, 48777, 48811, 48844, 48878, 48911, 48945,
	48978, 49012, 49045, 49078, 49112, 49145, 49178, 49211, 49244, 49278,
	49311, 49344, 49377, 49410, 49443, 49476, 49509, 49542, 49575, 49608,
	49640, 49673, 49706, 49739, 49771, 49804, 49837, 49869, 49902, 49935,
	49967, 50000, 50032, 50065, 50097, 50129, 50162, 50194, 50226, 50259,
	50291, 50323, 50355, 50387, 50420, 50452, 50484, 50516, 50548, 50580,
	50612, 50644, 50675, 50707, 50739, 50771, 50803, 50834, 50866, 50898,
	50929, 50961, 50993, 51024, 51056, 51087, 51119, 51150, 51182, 51213,
	51244, 51276, 51307, 51338, 51369, 51401, 51432, 51463, 51494, 51525,
	51556, 51587, 51618, 51649, 51680, 51711, 51742, 51773, 51803, 51834,
	51865, 51896, 51926, 51957, 51988, 52018, 52049, 52079, 52110, 52140,
	52171, 52201, 52231, 52262, 52292, 52322, 52353, 52383, 52413, 52443,
	52473, 52503, 52534, 52564, 52594, 52624, 52653, 52683, 52713, 52743,
	52773, 52803, 52832, 52862, 52892, 52922, 52951, 52981, 53010, 53040,
	53069, 53099, 53128, 53158, 53187, 53216, 53246, 53275, 53304, 53334,
	53363, 53392, 53421, 53450, 53479, 53508, 53537, 53566, 53595, 53624,
	53653, 53682, 53711, 53739, 53768, 53797, 53826, 53854, 53883, 53911,
	53940, 53969, 53997, 54026, 54054, 54082, 54111, 54139, 54167, 54196,
	54224, 54252, 54280, 54308, 54337, 54365, 54393, 54421, 54449, 54477,
	54505, 54533, 54560, 54588, 54616, 54644, 54672, 54699, 54727, 54755,
	54782, 54810, 54837, 54865, 54892, 54920, 54947, 54974, 55002, 55029,
	55056, 55084, 55111, 55138, 55165, 55192, 55219, 55246, 55274, 55300,
	55327, 55354, 55381, 55408, 55435, 55462, 55489, 55515, 55542, 55569,
	55595, 55622, 55648, 55675, 55701, 55728, 55754, 55781, 55807, 55833,
	55860, 55886, 55912, 55938, 55965, 55991, 56017, 56043, 56069, 56095,
	56121, 56147, 56173, 56199, 56225, 56250, 56276, 56302, 56328, 56353,
	56379, 56404, 56430, 56456, 56481, 56507, 56532, 56557, 56583, 56608,
	56633, 56659, 56684, 56709, 56734, 56760, 56785, 56810, 56835, 56860,
	56885, 56910, 56935, 56959, 56984, 57009, 57034, 57059, 57083, 57108,
	57133, 57157, 57182, 57206, 57231, 57255, 57280, 57304, 57329, 57353,
	57377, 57402, 57426, 57450, 57474, 57498, 57522, 57546, 57570, 57594,
	57618, 57642, 57666, 57690, 57714, 57738, 57762, 57785, 57809, 57833,
	57856, 57880, 57903, 57927, 57950, 57974, 57997, 58021, 58044, 58067,
	58091, 58114, 58137, 58160, 58183, 58207, 58230, 58253, 58276, 58299,
	58322, 58345, 58367, 58390, 58413, 58436, 58459, 58481, 58504, 58527,
	58549, 58572, 58594, 58617, 58639, 58662, 58684, 58706, 58729, 58751,
	58773, 58795, 58818, 58840, 58862, 58884, 58906, 58928, 58950, 58972,
	58994, 59016, 59038, 59059, 59081, 59103, 59125, 59146, 59168, 59190,
	59211, 59233, 59254, 59276, 59297, 59318, 59340, 59361, 59382, 59404,
	59425, 59446, 59467, 59488, 59509, 59530, 59551, 59572, 59593, 59614,
	59635, 59656, 59677, 59697, 59718, 59739, 59759, 59780, 59801, 59821,
	59842, 59862, 59883, 59903, 59923, 59944, 59964, 59984, 60004, 60025,
	60045, 60065, 60085, 60105, 60125, 60145, 60165, 60185, 60205, 60225,
	60244, 60264, 60284, 60304, 60323, 60343, 60363, 60382, 60402, 60421,
	60441, 60460, 60479, 60499, 60518, 60537, 60556, 60576, 60595, 60614,
	60633, 60652, 60671, 60690, 60709, 60728, 60747, 60766, 60785, 60803,
	60822, 60841, 60859, 60878, 60897, 60915, 60934, 60952, 60971, 60989,
	61007, 61026, 61044, 61062, 61081, 61099, 61117, 61135, 61153, 61171,
	61189, 61207, 61225, 61243, 61261, 61279, 61297, 61314, 61332, 61350,
	61367, 61385, 61403, 61420, 61438, 61455, 61473, 61490, 61507, 61525,
	61542, 61559, 61577, 61594, 61611, 61628, 61645, 61662, 61679, 61696,
	61713, 61730, 61747, 61764, 61780, 61797, 61814, 61831, 61847, 61864,
	61880, 61897, 61913, 61930, 61946, 61963, 61979, 61995, 62012, 62028,
	62044, 62060, 62076, 62092, 62108, 62125, 62141, 62156, 62172, 62188,
	62204, 62220, 62236, 62251, 62267, 62283, 62298, 62314, 62329, 62345,
	62360, 62376, 62391, 62407, 62422, 62437, 62453, 62468, 62483, 62498,
	62513, 62528, 62543, 62558, 62573, 62588, 62603, 62618, 62633, 62648,
	62662, 62677, 62692, 62706, 62721, 62735, 62750, 62764, 62779, 62793,
	62808, 62822, 62836, 62850, 62865, 62879, 62893, 62907, 62921, 62935,
	62949, 62963, 62977, 62991, 63005, 63019, 63032, 63046, 63060, 63074,
	63087, 63101, 63114, 63128, 63141, 63155, 63168, 63182, 63195, 63208,
	63221, 63235, 63248, 63261, 63274, 63287, 63300, 63313, 63326, 63339,
	63352, 63365, 63378, 63390, 63403, 63416, 63429, 63441, 63454, 63466,
	63479, 63491, 63504, 63516, 63528, 63541, 63553, 63565, 63578, 63590,
	63602, 63614, 63626, 63638, 63650, 63662, 63674, 63686, 63698, 63709,
	63721, 63733, 63745, 63756, 63768, 63779, 63791, 63803, 63814, 63825,
	63837, 63848, 63859, 63871, 63882, 63893, 63904, 63915, 63927, 63938,
	63949, 63960, 63971, 63981, 63992, 64003, 64014, 64025, 64035, 64046,
	64057, 64067, 64078, 64088, 64099, 64109, 64120, 64130, 64140, 64151,
	64161, 64171, 64181, 64192, 64202, 64212, 64222, 64232, 64242, 64252,
	64261, 64271, 64281, 64291, 64301, 64310, 64320, 64330, 64339, 64349,
	64358, 64368, 64377, 64387, 64396, 64405, 64414, 64424, 64433, 64442,
	64451, 64460, 64469, 64478, 64487, 64496, 64505, 64514, 64523, 64532,
	64540, 64549, 64558, 64566, 64575, 64584, 64592, 64601, 64609, 64617,
	64626, 64634, 64642, 64651, 64659, 64667, 64675, 64683, 64691, 64699,
	64707, 64715, 64723, 64731, 64739, 64747, 64754, 64762, 64770, 64777,
	64785, 64793, 64800, 64808, 64815, 64822, 64830, 64837, 64844, 64852,
	64859, 64866, 64873, 64880, 64887, 64895, 64902, 64908, 64915, 64922,
	64929, 64936, 64943, 64949, 64956, 64963, 64969, 64976, 64982, 64989,
	64995, 65002, 65008, 65015, 65021, 65027, 65033, 65040, 65046, 65052,
	65058, 65064, 65070, 65076, 65082, 65088, 65094, 65099, 65105, 65111,
	65117, 65122, 65128, 65133, 65139, 65144, 65150, 65155, 65161, 65166,
	65171, 65177, 65182, 65187, 65192, 65197, 65202, 65207, 65212, 65217,
	65222, 65227, 65232, 65237, 65242, 65246, 65251, 65256, 65260, 65265,
	65270, 65274, 65279, 65283, 65287, 65292, 65296, 65300, 65305, 65309,
	65313, 65317, 65321, 65325, 65329, 65333, 65337, 65341, 65345, 65349,
	65352, 65356, 65360, 65363, 65367, 65371, 65374, 65378, 65381, 65385,
	65388, 65391, 65395, 65398, 65401, 65404, 65408, 65411, 65414, 65417,
	65420, 65423, 65426, 65429, 65431, 65434, 65437, 65440, 65442, 65445,
	65448, 65450, 65453, 65455, 65458, 65460, 65463, 65465, 65467, 65470,
	65472, 65474, 65476, 65478, 65480, 65482, 65484, 65486, 65488, 65490,
	65492, 65494, 65496, 65497, 65499, 65501, 65502, 65504, 65505, 65507,
	65508, 65510, 65511, 65513, 65514, 65515, 65516, 65518, 65519, 65520,
	65521, 65522, 65523, 65524, 65525, 65526, 65527, 65527, 65528, 65529,
	65530, 65530, 65531, 65531, 65532, 65532, 65533, 65533, 65534, 65534,
	65534, 65535, 65535, 65535, 65535, 65535, 65535, 65535,
}

// tanToAngle maps a slope i/SlopeRange in [0, 1] to its angle in the first
// octant.
var tanToAngle = [SlopeRange + 1]Angle{
	0, 333772, 667544, 1001315, 1335086, 1668857, 2002626, 2336395,
	2670163, 3003929, 3337694, 3671457, 4005219, 4338979, 4672736, 5006492,
	5340245, 5673995, 6007743, 6341488, 6675229, 7008968, 7342703, 7676435,
	8010163, 8343888, 8677608, 9011324, 9345036, 9678744, 10012447, 10346145,
	10679838, 11013526, 11347209, 11680886, 12014558, 12348224, 12681884, 13015539,
	13349187, 13682828, 14016463, 14350092, 14683713, 15017328, 15350935, 15684535,
	16018128, 16351713, 16685290, 17018860, 17352421, 17685974, 18019518, 18353054,
	18686581, 19020099, 19353609, 19687109, 20020599, 20354080, 20687552, 21021013,
	21354465, 21687906, 22021337, 22354758, 22688168, 23021567, 23354955, 23688332,
	24021698, 24355052, 24688395, 25021726, 25355045, 25688352, 26021647, 26354929,
	26688199, 27021456, 27354701, 27687932, 28021150, 28354355, 28687547, 29020724,
	29353888, 29687038, 30020174, 30353296, 30686403, 31019496, 31352573, 31685636,
	32018684, 32351717, 32684734, 33017736, 33350722, 33683693, 34016647, 34349585,
	34682507, 35015412, 35348301, 35681173, 36014028, 36346866, 36679686, 37012490,
	37345275, 37678043, 38010793, 38343526, 38676239, 39008935, 39341612, 39674270,
	40006910, 40339531, 40672132, 41004714, 41337277, 41669820, 42002344, 42334847,
	42667331, 42999794, 43332237, 43664659, 43997061, 44329442, 44661801, 44994140,
	45326458, 45658753, 45991028, 46323280, 46655511, 46987720, 47319906, 47652070,
	47984211, 48316330, 48648426, 48980499, 49312549, 49644575, 49976578, 50308557,
	50640513, 50972444, 51304352, 51636235, 51968094, 52299929, 52631738, 52963523,
	53295283, 53627018, 53958727, 54290411, 54622069, 54953702, 55285308, 55616889,
	55948443, 56279971, 56611472, 56942947, 57274395, 57605816, 57937210, 58268576,
	58599915, 58931226, 59262510, 59593766, 59924993, 60256193, 60587364, 60918506,
	61249620, 61580705, 61911761, 62242788, 62573786, 62904754, 63235693, 63566602,
	63897481, 64228330, 64559149, 64889938, 65220696, 65551423, 65882120, 66212786,
	66543420, 66874024, 67204596, 67535136, 67865645, 68196122, 68526567, 68856980,
	69187361, 69517709, 69848025, 70178307, 70508557, 70838774, 71168958, 71499109,
	71829226, 72159309, 72489358, 72819374, 73149356, 73479303, 73809216, 74139095,
	74468938, 74798747, 75128521, 75458260, 75787964, 76117632, 76447265, 76776862,
	77106423, 77435948, 77765437, 78094890, 78424306, 78753686, 79083029, 79412335,
	79741604, 80070836, 80400031, 80729188, 81058308, 81387389, 81716433, 82045439,
	82374407, 82703336, 83032227, 83361079, 83689893, 84018667, 84347403, 84676099,
	85004756, 85333373, 85661951, 85990489, 86318987, 86647445, 86975862, 87304240,
	87632577, 87960873, 88289128, 88617343, 88945516, 89273648, 89601739, 89929788,
	90257796, 90585761, 90913685, 91241567, 91569406, 91897204, 92224958, 92552670,
	92880339, 93207965, 93535549, 93863089, 94190585, 94518038, 94845447, 95172813,
	95500135, 95827412, 96154646, 96481835, 96808979, 97136079, 97463134, 97790144,
	98117109, 98444029, 98770904, 99097733, 99424516, 99751254, 100077946, 100404591,
	100731191, 101057744, 101384251, 101710711, 102037125, 102363491, 102689811, 103016083,
	103342308, 103668486, 103994616, 104320698, 104646733, 104972720, 105298658, 105624548,
	105950390, 106276183, 106601928, 106927624, 107253271, 107578868, 107904417, 108229916,
	108555366, 108880766, 109206117, 109531417, 109856667, 110181868, 110507018, 110832117,
	111157166, 111482164, 111807112, 112132008, 112456853, 112781647, 113106390, 113431081,
	113755721, 114080308, 114404844, 114729328, 115053759, 115378139, 115702465, 116026740,
	116350961, 116675130, 116999245, 117323308, 117647317, 117971273, 118295175, 118619024,
	118942819, 119266560, 119590247, 119913880, 120237458, 120560982, 120884452, 121207866,
	121531226, 121854531, 122177781, 122500976, 122824115, 123147199, 123470227, 123793200,
	124116116, 124438977, 124761781, 125084530, 125407221, 125729857, 126052435, 126374957,
	126697422, 127019830, 127342181, 127664474, 127986710, 128308889, 128631009, 128953072,
	129275078, 129597025, 129918913, 130240744, 130562516, 130884230, 131205884, 131527480,
	131849018, 132170496, 132491914, 132813274, 133134574, 133455814, 133776995, 134098116,
	134419177, 134740178, 135061119, 135381999, 135702819, 136023579, 136344277, 136664915,
	136985492, 137306008, 137626463, 137946856, 138267188, 138587458, 138907667, 139227814,
	139547899, 139867922, 140187883, 140507781, 140827617, 141147391, 141467102, 141786750,
	142106335, 142425857, 142745316, 143064712, 143384044, 143703313, 144022518, 144341660,
	144660737, 144979751, 145298701, 145617586, 145936407, 146255163, 146573855, 146892482,
	147211045, 147529542, 147847975, 148166342, 148484644, 148802880, 149121051, 149439157,
	149757196, 150075170, 150393078, 150710919, 151028695, 151346404, 151664046, 151981622,
	152299132, 152616574, 152933950, 153251258, 153568499, 153885673, 154202780, 154519819,
	154836791, 155153695, 155470531, 155787299, 156103998, 156420630, 156737194, 157053689,
	157370115, 157686473, 158002762, 158318982, 158635133, 158951216, 159267228, 159583172,
	159899046, 160214851, 160530586, 160846251, 161161846, 161477371, 161792827, 162108212,
	162423526, 162738771, 163053944, 163369047, 163684079, 163999041, 164313931, 164628751,
	164943499, 165258175, 165572781, 165887315, 166201777, 166516167, 166830486, 167144732,
	167458907, 167773009, 168087039, 168400997, 168714882, 169028695, 169342434, 169656101,
	169969695, 170283217, 170596664, 170910039, 171223340, 171536568, 171849722, 172162803,
	172475810, 172788743, 173101601, 173414386, 173727097, 174039733, 174352295, 174664782,
	174977195, 175289533, 175601796, 175913985, 176226098, 176538136, 176850099, 177161987,
	177473799, 177785535, 178097196, 178408781, 178720291, 179031724, 179343081, 179654363,
	179965567, 180276696, 180587748, 180898724, 181209622, 181520445, 181831190, 182141858,
	182452449, 182762964, 183073400, 183383760, 183694042, 184004246, 184314373, 184624422,
	184934393, 185244287, 185554102, 185863839, 186173498, 186483078, 186792580, 187102004,
	187411349, 187720615, 188029802, 188338911, 188647940, 188956890, 189265762, 189574553,
	189883266, 190191899, 190500452, 190808926, 191117319, 191425633, 191733868, 192042021,
	192350095, 192658089, 192966002, 193273835, 193581587, 193889259, 194196850, 194504360,
	194811789, 195119137, 195426404, 195733590, 196040695, 196347718, 196654660, 196961520,
	197268299, 197574996, 197881611, 198188144, 198494596, 198800965, 199107252, 199413456,
	199719579, 200025619, 200331576, 200637451, 200943243, 201248952, 201554578, 201860122,
	202165582, 202470959, 202776253, 203081464, 203386591, 203691634, 203996594, 204301471,
	204606263, 204910972, 205215597, 205520138, 205824594, 206128967, 206433255, 206737459,
	207041578, 207345613, 207649563, 207953428, 208257209, 208560905, 208864516, 209168041,
	209471482, 209774838, 210078108, 210381292, 210684392, 210987405, 211290333, 211593176,
	211895932, 212198603, 212501188, 212803687, 213106099, 213408426, 213710666, 214012819,
	214314887, 214616867, 214918761, 215220569, 215522290, 215823923, 216125470, 216426930,
	216728303, 217029588, 217330787, 217631898, 217932921, 218233857, 218534706, 218835467,
	219136140, 219436726, 219737223, 220037633, 220337954, 220638188, 220938333, 221238390,
	221538358, 221838239, 222138030, 222437733, 222737348, 223036874, 223336311, 223635659,
	223934918, 224234088, 224533169, 224832161, 225131064, 225429877, 225728601, 226027235,
	226325780, 226624236, 226922601, 227220877, 227519063, 227817159, 228115165, 228413082,
	228710907, 229008643, 229306289, 229603844, 229901309, 230198683, 230495966, 230793160,
	231090262, 231387274, 231684194, 231981024, 232277763, 232574411, 232870968, 233167433,
	233463807, 233760090, 234056282, 234352382, 234648390, 234944307, 235240133, 235535866,
	235831508, 236127058, 236422516, 236717881, 237013155, 237308337, 237603426, 237898424,
	238193328, 238488141, 238782861, 239077488, 239372023, 239666465, 239960815, 240255071,
	240549235, 240843306, 241137283, 241431168, 241724960, 242018658, 242312263, 242605775,
	242899194, 243192519, 243485750, 243778888, 244071932, 244364883, 244657740, 244950503,
	245243172, 245535747, 245828228, 246120615, 246412908, 246705107, 246997211, 247289221,
	247581137, 247872958, 248164685, 248456317, 248747855, 249039298, 249330646, 249621900,
	249913058, 250204122, 250495090, 250785964, 251076743, 251367426, 251658014, 251948507,
	252238905, 252529207, 252819413, 253109525, 253399540, 253689460, 253979285, 254269013,
	254558646, 254848183, 255137624, 255426970, 255716219, 256005372, 256294429, 256583390,
	256872254, 257161022, 257449694, 257738270, 258026749, 258315131, 258603417, 258891607,
	259179700, 259467696, 259755595, 260043397, 260331103, 260618711, 260906223, 261193637,
	261480955, 261768175, 262055298, 262342324, 262629253, 262916084, 263202818, 263489454,
	263775993, 264062434, 264348778, 264635024, 264921172, 265207223, 265493175, 265779030,
	266064787, 266350446, 266636007, 266921470, 267206835, 267492101, 267777270, 268062340,
	268347312, 268632186, 268916961, 269201637, 269486216, 269770695, 270055076, 270339359,
	270623543, 270907628, 271191614, 271475502, 271759290, 272042980, 272326570, 272610062,
	272893455, 273176748, 273459943, 273743038, 274026034, 274308931, 274591728, 274874426,
	275157025, 275439524, 275721924, 276004224, 276286424, 276568525, 276850527, 277132428,
	277414230, 277695932, 277977534, 278259036, 278540439, 278821741, 279102943, 279384045,
	279665048, 279945950, 280226752, 280507453, 280788055, 281068556, 281348956, 281629257,
	281909457, 282189556, 282469555, 282749454, 283029251, 283308949, 283588545, 283868041,
	284147436, 284426730, 284705924, 284985017, 285264008, 285542899, 285821689, 286100378,
	286378966, 286657452, 286935838, 287214122, 287492306, 287770388, 288048368, 288326248,
	288604026, 288881703, 289159278, 289436752, 289714124, 289991395, 290268564, 290545632,
	290822598, 291099463, 291376225, 291652886, 291929445, 292205903, 292482258, 292758512,
	293034664, 293310714, 293586662, 293862508, 294138251, 294413893, 294689433, 294964870,
	295240206, 295515439, 295790570, 296065599, 296340525, 296615349, 296890071, 297164690,
	297439207, 297713621, 297987933, 298262143, 298536249, 298810254, 299084155, 299357954,
	299631651, 299905245, 300178735, 300452124, 300725409, 300998592, 301271671, 301544648,
	301817522, 302090293, 302362961, 302635526, 302907988, 303180347, 303452603, 303724756,
	303996806, 304268752, 304540596, 304812336, 305083973, 305355506, 305626937, 305898264,
	306169487, 306440608, 306711625, 306982538, 307253348, 307524055, 307794658, 308065157,
	308335553, 308605846, 308876034, 309146120, 309416101, 309685979, 309955753, 310225423,
	310494990, 310764453, 311033812, 311303067, 311572219, 311841266, 312110210, 312379050,
	312647786, 312916417, 313184945, 313453369, 313721689, 313989905, 314258017, 314526024,
	314793928, 315061727, 315329422, 315597013, 315864500, 316131883, 316399161, 316666335,
	316933405, 317200371, 317467232, 317733989, 318000641, 318267189, 318533633, 318799972,
	319066207, 319332338, 319598363, 319864285, 320130102, 320395814, 320661422, 320926925,
	321192324, 321457618, 321722807, 321987892, 322252872, 322517747, 322782518, 323047184,
	323311745, 323576202, 323840553, 324104800, 324368942, 324632980, 324896912, 325160740,
	325424462, 325688080, 325951593, 326215001, 326478304, 326741503, 327004596, 327267584,
	327530467, 327793246, 328055919, 328318487, 328580950, 328843308, 329105561, 329367709,
	329629752, 329891690, 330153522, 330415249, 330676872, 330938389, 331199801, 331461107,
	331722309, 331983405, 332244396, 332505282, 332766062, 333026737, 333287307, 333547772,
	333808131, 334068385, 334328534, 334588577, 334848515, 335108348, 335368075, 335627697,
	335887213, 336146624, 336405930, 336665130, 336924225, 337183214, 337442098, 337700876,
	337959549, 338218116, 338476578, 338734935, 338993185, 339251331, 339509371, 339767305,
	340025133, 340282857, 340540474, 340797986, 341055392, 341312693, 341569888, 341826978,
	342083962, 342340840, 342597613, 342854280, 343110841, 343367297, 343623647, 343879892,
	344136030, 344392063, 344647991, 344903812, 345159528, 345415139, 345670643, 345926042,
	346181335, 346436522, 346691604, 346946580, 347201450, 347456215, 347710873, 347965426,
	348219873, 348474215, 348728450, 348982580, 349236604, 349490522, 349744335, 349998041,
	350251642, 350505137, 350758526, 351011810, 351264987, 351518059, 351771025, 352023885,
	352276640, 352529288, 352781831, 353034268, 353286599, 353538824, 353790943, 354042957,
	354294865, 354546666, 354798362, 355049953, 355301437, 355552815, 355804088, 356055255,
	356306316, 356557271, 356808120, 357058863, 357309501, 357560032, 357810458, 358060778,
	358310992, 358561100, 358811102, 359060999, 359310790, 359560474, 359810053, 360059526,
	360308894, 360558155, 360807310, 361056360, 361305304, 361554142, 361802874, 362051500,
	362300021, 362548436, 362796744, 363044947, 363293044, 363541036, 363788921, 364036701,
	364284375, 364531943, 364779405, 365026761, 365274012, 365521157, 365768196, 366015129,
	366261956, 366508678, 366755293, 367001803, 367248208, 367494506, 367740699, 367986786,
	368232767, 368478642, 368724412, 368970076, 369215634, 369461086, 369706433, 369951674,
	370196809, 370441838, 370686762, 370931580, 371176293, 371420899, 371665400, 371909795,
	372154085, 372398269, 372642347, 372886320, 373130187, 373373948, 373617604, 373861154,
	374104598, 374347937, 374591170, 374834298, 375077320, 375320236, 375563047, 375805752,
	376048352, 376290846, 376533234, 376775517, 377017695, 377259767, 377501733, 377743594,
	377985349, 378226999, 378468544, 378709983, 378951316, 379192544, 379433667, 379674684,
	379915595, 380156402, 380397102, 380637698, 380878188, 381118573, 381358852, 381599026,
	381839094, 382079058, 382318916, 382558668, 382798315, 383037857, 383277294, 383516625,
	383755851, 383994972, 384233988, 384472898, 384711703, 384950403, 385188998, 385427488,
	385665872, 385904151, 386142325, 386380394, 386618358, 386856216, 387093970, 387331618,
	387569162, 387806600, 388043933, 388281161, 388518284, 388755302, 388992215, 389229024,
	389465727, 389702325, 389938818, 390175206, 390411489, 390647668, 390883741, 391119710,
	391355574, 391591332, 391826986, 392062536, 392297980, 392533319, 392768554, 393003684,
	393238709, 393473630, 393708445, 393943156, 394177763, 394412264, 394646661, 394880953,
	395115141, 395349224, 395583202, 395817076, 396050845, 396284510, 396518070, 396751525,
	396984876, 397218123, 397451265, 397684302, 397917235, 398150064, 398382788, 398615408,
	398847923, 399080334, 399312641, 399544843, 399776941, 400008935, 400240824, 400472609,
	400704290, 400935867, 401167339, 401398707, 401629971, 401861131, 402092187, 402323138,
	402553986, 402784729, 403015368, 403245903, 403476334, 403706661, 403936884, 404167003,
	404397019, 404626930, 404856737, 405086440, 405316039, 405545535, 405774926, 406004214,
	406233398, 406462478, 406691455, 406920327, 407149096, 407377761, 407606322, 407834780,
	408063134, 408291385, 408519531, 408747574, 408975514, 409203350, 409431082, 409658711,
	409886236, 410113658, 410340977, 410568192, 410795303, 411022311, 411249216, 411476017,
	411702715, 411929310, 412155801, 412382189, 412608474, 412834656, 413060734, 413286709,
	413512581, 413738350, 413964015, 414189578, 414415037, 414640394, 414865647, 415090797,
	415315845, 415540789, 415765630, 415990369, 416215004, 416439537, 416663966, 416888293,
	417112517, 417336638, 417560657, 417784572, 418008385, 418232095, 418455703, 418679208,
	418902610, 419125909, 419349106, 419572201, 419795193, 420018082, 420240869, 420463553,
	420686135, 420908614, 421130991, 421353265, 421575438, 421797508, 422019475, 422241340,
	422463103, 422684764, 422906322, 423127779, 423349133, 423570385, 423791535, 424012582,
	424233528, 424454372, 424675113, 424895753, 425116290, 425336726, 425557060, 425777291,
	425997421, 426217449, 426437375, 426657200, 426876923, 427096543, 427316063, 427535480,
	427754796, 427974010, 428193122, 428412133, 428631042, 428849850, 429068556, 429287161,
	429505664, 429724066, 429942367, 430160566, 430378663, 430596660, 430814555, 431032348,
	431250041, 431467632, 431685122, 431902511, 432119798, 432336985, 432554070, 432771054,
	432987938, 433204720, 433421401, 433637982, 433854461, 434070839, 434287117, 434503294,
	434719369, 434935344, 435151219, 435366992, 435582665, 435798237, 436013709, 436229079,
	436444350, 436659519, 436874588, 437089557, 437304425, 437519192, 437733859, 437948426,
	438162892, 438377258, 438591524, 438805689, 439019754, 439233719, 439447584, 439661348,
	439875012, 440088576, 440302040, 440515404, 440728668, 440941832, 441154896, 441367860,
	441580724, 441793488, 442006152, 442218716, 442431181, 442643546, 442855811, 443067976,
	443280042, 443492007, 443703874, 443915640, 444127307, 444338875, 444550343, 444761712,
	444972981, 445184150, 445395221, 445606192, 445817063, 446027835, 446238508, 446449082,
	446659556, 446869932, 447080208, 447290385, 447500463, 447710442, 447920322, 448130102,
	448339784, 448549367, 448758851, 448968236, 449177522, 449386710, 449595798, 449804788,
	450013679, 450222472, 450431166, 450639761, 450848257, 451056655, 451264955, 451473156,
	451681258, 451889262, 452097168, 452304975, 452512684, 452720294, 452927806, 453135220,
	453342536, 453549753, 453756873, 453963894, 454170817, 454377642, 454584369, 454790998,
	454997529, 455203962, 455410298, 455616535, 455822674, 456028716, 456234660, 456440506,
	456646254, 456851905, 457057458, 457262913, 457468271, 457673532, 457878694, 458083760,
	458288727, 458493598, 458698371, 458903046, 459107625, 459312106, 459516489, 459720776,
	459924965, 460129057, 460333053, 460536950, 460740751, 460944455, 461148062, 461351572,
	461554985, 461758301, 461961520, 462164642, 462367668, 462570597, 462773429, 462976164,
	463178803, 463381345, 463583791, 463786139, 463988392, 464190548, 464392607, 464594570,
	464796437, 464998207, 465199881, 465401458, 465602940, 465804325, 466005614, 466206807,
	466407903, 466608904, 466809808, 467010617, 467211329, 467411946, 467612467, 467812891,
	468013220, 468213453, 468413591, 468613632, 468813578, 469013428, 469213183, 469412842,
	469612405, 469811873, 470011245, 470210522, 470409703, 470608789, 470807780, 471006675,
	471205475, 471404180, 471602790, 471801304, 471999723, 472198047, 472396276, 472594410,
	472792449, 472990393, 473188242, 473385996, 473583655, 473781219, 473978689, 474176064,
	474373344, 474570529, 474767620, 474964616, 475161517, 475358324, 475555036, 475751654,
	475948178, 476144607, 476340941, 476537181, 476733327, 476929379, 477125337, 477321200,
	477516969, 477712644, 477908225, 478103712, 478299104, 478494403, 478689608, 478884719,
	479079736, 479274659, 479469489, 479664224, 479858866, 480053414, 480247869, 480442230,
	480636497, 480830671, 481024751, 481218738, 481412631, 481606431, 481800138, 481993751,
	482187271, 482380698, 482574031, 482767271, 482960418, 483153472, 483346433, 483539301,
	483732076, 483924758, 484117347, 484309843, 484502246, 484694556, 484886774, 485078899,
	485270931, 485462870, 485654717, 485846471, 486038133, 486229702, 486421178, 486612562,
	486803854, 486995053, 487186160, 487377175, 487568098, 487758928, 487949666, 488140312,
	488330865, 488521327, 488711696, 488901974, 489092160, 489282253, 489472255, 489662165,
	489851983, 490041709, 490231344, 490420887, 490610338, 490799697, 490988965, 491178141,
	491367226, 491556220, 491745121, 491933932, 492122651, 492311279, 492499815, 492688260,
	492876614, 493064877, 493253049, 493441129, 493629119, 493817017, 494004825, 494192541,
	494380167, 494567701, 494755145, 494942498, 495129760, 495316932, 495504013, 495691003,
	495877902, 496064711, 496251430, 496438057, 496624595, 496811042, 496997398, 497183665,
	497369841, 497555926, 497741922, 497927827, 498113642, 498299367, 498485002, 498670546,
	498856001, 499041366, 499226641, 499411826, 499596921, 499781926, 499966842, 500151667,
	500336403, 500521050, 500705607, 500890074, 501074451, 501258740, 501442938, 501627047,
	501811067, 501994998, 502178839, 502362591, 502546253, 502729827, 502913311, 503096706,
	503280012, 503463229, 503646357, 503829396, 504012346, 504195207, 504377979, 504560663,
	504743257, 504925763, 505108180, 505290509, 505472749, 505654900, 505836963, 506018937,
	506200823, 506382621, 506564329, 506745950, 506927482, 507108926, 507290282, 507471550,
	507652729, 507833821, 508014824, 508195739, 508376566, 508557305, 508737957, 508918520,
	509098996, 509279383, 509459683, 509639896, 509820020, 510000057, 510180006, 510359868,
	510539642, 510719329, 510898928, 511078440, 511257864, 511437201, 511616451, 511795614,
	511974689, 512153677, 512332578, 512511392, 512690118, 512868758, 513047311, 513225777,
	513404156, 513582448, 513760653, 513938771, 514116803, 514294748, 514472606, 514650377,
	514828062, 515005661, 515183173, 515360598, 515537937, 515715190, 515892356, 516069436,
	516246430, 516423337, 516600158, 516776893, 516953542, 517130105, 517306581, 517482972,
	517659277, 517835496, 518011629, 518187676, 518363637, 518539513, 518715302, 518891007,
	519066625, 519242158, 519417605, 519592967, 519768243, 519943434, 520118539, 520293559,
	520468494, 520643343, 520818107, 520992786, 521167380, 521341888, 521516312, 521690650,
	521864903, 522039072, 522213155, 522387154, 522561067, 522734896, 522908640, 523082299,
	523255874, 523429364, 523602769, 523776090, 523949326, 524122478, 524295545, 524468528,
	524641426, 524814240, 524986970, 525159615, 525332177, 525504654, 525677047, 525849355,
	526021580, 526193721, 526365778, 526537750, 526709639, 526881444, 527053165, 527224802,
	527396356, 527567826, 527739212, 527910515, 528081734, 528252869, 528423921, 528594889,
	528765774, 528936576, 529107294, 529277929, 529448481, 529618949, 529789334, 529959636,
	530129855, 530299991, 530470044, 530640014, 530809900, 530979704, 531149425, 531319064,
	531488619, 531658092, 531827482, 531996789, 532166013, 532335155, 532504215, 532673192,
	532842086, 533010898, 533179628, 533348275, 533516840, 533685323, 533853723, 534022041,
	534190277, 534358431, 534526503, 534694493, 534862400, 535030226, 535197970, 535365632,
	535533212, 535700710, 535868127, 536035462, 536202715, 536369886, 536536976, 536703985,
	536870912,
}

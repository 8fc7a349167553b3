package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category labels produced by the keyword classifier. Utilities and travel are
// sub-labels that the category mapper folds into the app taxonomy.
const (
	LabelFood          = "Ăn uống"
	LabelTransport     = "Giao thông"
	LabelHealth        = "Sức khỏe"
	LabelShopping      = "Mua sắm"
	LabelUtilities     = "Tiện ích"
	LabelTravel        = "Du lịch"
	LabelEntertainment = "Giải trí"
	LabelOther         = "Khác"
)

// keywordGroup maps a set of keywords to a label
type keywordGroup struct {
	label   string
	pattern *regexp.Regexp
}

// keywordGroups is a priority list: the first group with a hit wins, so a
// description matching several groups is decided by this order.
var keywordGroups = []keywordGroup{
	newKeywordGroup(LabelFood,
		"ăn", "uống", "ăn sáng", "ăn trưa", "ăn tối", "cơm", "phở", "bún", "bánh", "bánh mì", "mì", "miến",
		"hủ tiếu", "lẩu", "xôi", "cháo", "gà", "thịt", "rau", "trái cây", "hoa quả", "kem", "sữa",
		"cà phê", "cafe", "café", "coffee", "trà", "trà sữa", "tea", "nước ngọt", "nước suối", "nước ép",
		"nước cam", "bia", "beer", "nhà hàng", "quán", "food", "drink", "breakfast", "lunch", "dinner",
		"restaurant", "pizza", "burger", "chicken", "snack", "milk",
	),
	newKeywordGroup(LabelTransport,
		"xăng", "dầu", "fuel", "petrol", "xe", "xe ôm", "taxi", "grab", "gojek", "uber", "xe buýt", "buýt",
		"bus", "tàu", "metro", "gửi xe", "đỗ xe", "parking", "vé xe", "phí cầu đường", "toll", "sửa xe",
		"rửa xe", "car", "motorbike", "bike",
	),
	newKeywordGroup(LabelHealth,
		"thuốc", "nhà thuốc", "pharmacy", "medicine", "bệnh viện", "hospital", "phòng khám", "clinic",
		"khám", "bác sĩ", "doctor", "y tế", "vitamin", "nha khoa", "dental", "xét nghiệm",
	),
	newKeywordGroup(LabelShopping,
		"quần", "áo", "giày", "dép", "túi", "váy", "mũ", "nón", "thời trang", "clothes", "clothing",
		"shirt", "pants", "shoes", "dress", "fashion",
	),
	newKeywordGroup(LabelUtilities,
		"điện", "tiền điện", "nước", "tiền nước", "gas", "internet", "wifi", "điện thoại", "cước",
		"truyền hình", "electricity", "electric", "water", "phone", "bill", "thanh toán", "payment",
	),
	newKeywordGroup(LabelTravel,
		"du lịch", "travel", "khách sạn", "hotel", "resort", "homestay", "máy bay", "vé máy bay", "flight",
		"airline", "vé", "ticket", "booking", "tour",
	),
	newKeywordGroup(LabelEntertainment,
		"phim", "xem phim", "rạp", "cinema", "movie", "cgv", "game", "trò chơi", "karaoke", "sách", "book",
		"nhạc", "music", "concert", "netflix", "spotify", "giải trí",
	),
}

// newKeywordGroup compiles keywords into a single whole-word pattern
func newKeywordGroup(label string, keywords ...string) keywordGroup {
	return keywordGroup{
		label:   label,
		pattern: wordPattern(keywords...),
	}
}

// wordPattern matches any of words, case-insensitively, bounded by non-letters.
// regexp's \b only understands ASCII and would split Vietnamese words.
func wordPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(?:` + strings.Join(quoted, "|") + `)(?:[^\p{L}\p{N}]|$)`)
}

// Classify maps a free-text description to a category label
func Classify(description string) string {
	text := strings.ToLower(norm.NFC.String(description))
	if strings.TrimSpace(text) == "" {
		return LabelOther
	}

	for _, group := range keywordGroups {
		if group.pattern.MatchString(text) {
			return group.label
		}
	}

	return LabelOther
}

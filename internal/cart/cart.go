// Package cart chứa các phép biến đổi thuần trên dòng giỏ hàng.
// Handler chỉ lo đọc/ghi document, mọi logic gộp/xoá/tính tổng nằm ở đây.
package cart

import (
	"errors"
	"regexp"
	"strconv"

	"plantshop_backend/internal/models"
)

var ErrBadPrice = errors.New("giá sản phẩm không hợp lệ")

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ParsePrice quy giá về dạng số. Client có thể gửi số sẵn hoặc chuỗi
// đã định dạng kiểu "200.000đ".
func ParsePrice(v any) (float64, error) {
	switch p := v.(type) {
	case float64:
		return p, nil
	case string:
		digits := nonDigits.ReplaceAllString(p, "")
		if digits == "" {
			return 0, ErrBadPrice
		}
		n, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return 0, ErrBadPrice
		}
		return n, nil
	default:
		return 0, ErrBadPrice
	}
}

// Merge gộp các dòng mới vào giỏ: trùng productId thì cộng dồn số lượng,
// chưa có thì thêm vào cuối.
func Merge(items, incoming []models.CartItem) []models.CartItem {
	for _, in := range incoming {
		found := false
		for i := range items {
			if items[i].ProductID == in.ProductID {
				items[i].Quantity += in.Quantity
				found = true
				break
			}
		}
		if !found {
			items = append(items, in)
		}
	}
	return items
}

// SetQuantity ghi đè số lượng của một dòng rồi loại mọi dòng có số lượng <= 0,
// nên đặt số lượng về 0 tương đương xoá. Trả về false nếu productId không có
// trong giỏ.
func SetQuantity(items []models.CartItem, productID string, quantity int) ([]models.CartItem, bool) {
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return items, false
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	return kept, true
}

// Remove loại dòng theo productId. Xoá id không có trong giỏ vẫn là thành công.
func Remove(items []models.CartItem, productID string) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return kept
}

// Total tính lại toàn bộ tổng tiền, không cộng dồn tăng dần.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// IDs liệt kê productId của các dòng, dùng cho $in khi kéo hàng đã đặt
// ra khỏi giỏ.
func IDs(items []models.CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

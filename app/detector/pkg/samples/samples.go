package samples

import "github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"

// All 返回全部示例文章的副本
func All() []model.SampleArticle {
	out := make([]model.SampleArticle, len(articles))
	copy(out, articles)
	return out
}

// Get 根据 ID 查找示例文章
func Get(id string) (model.SampleArticle, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return model.SampleArticle{}, false
}

// Text 示例文章参与分析的文本：标题 + 空格 + 正文
func Text(a model.SampleArticle) string {
	return a.Title + " " + a.Content
}

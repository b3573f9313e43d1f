// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prompt

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/chinese-namegen/models"
)

// SystemPersona is sent as the system message on every request
const SystemPersona = "你是一个专业的中文名字起名专家，精通中英文文化。"

const (
	labelMale             = "男"
	labelFemale           = "女"
	noSpecialRequirements = "无特殊要求"
)

const template = `作为一个专业的中文名字起名专家，请为英文名"%s"生成3个富有文化内涵的中文名。

基本信息：
1. 性别：%s
2. 特殊要求：%s

要求：
1. 理解英文名的含义和特点
2. 根据指定性别生成合适的名字
3. 充分考虑用户的特殊要求
4. 每个中文名都要遵循中国传统取名习惯：
   - 姓氏一个字
   - 名字一到两个字
   - 避免生僻字
   - 名字要读音优美
5. 每个名字要体现中国传统文化特色
6. 为每个名字提供详细的中英文解释

请按以下格式返回：
{
  "names": [
    {
      "chinese": "中文名1",
      "meaning": {
        "chinese": "中文解释1",
        "english": "English explanation 1"
      }
    },
    {
      "chinese": "中文名2",
      "meaning": {
        "chinese": "中文解释2",
        "english": "English explanation 2"
      }
    },
    {
      "chinese": "中文名3",
      "meaning": {
        "chinese": "中文解释3",
        "english": "English explanation 3"
      }
    }
  ]
}`

// GenderLabel maps the form value to the label used in the prompt.
// Anything other than "male" is labelled female.
func GenderLabel(gender string) string {
	if gender == models.GenderMale {
		return labelMale
	}
	return labelFemale
}

// Build renders the user prompt for a request
func Build(req models.NameRequest) string {
	requirements := norm.NFC.String(req.Requirements)
	if requirements == "" {
		requirements = noSpecialRequirements
	}
	return fmt.Sprintf(template, norm.NFC.String(req.EnglishName), GenderLabel(req.Gender), requirements)
}

// Messages returns the two-message exchange sent upstream
func Messages(req models.NameRequest) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: SystemPersona},
		{Role: models.RoleUser, Content: Build(req)},
	}
}

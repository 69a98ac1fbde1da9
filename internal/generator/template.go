package generator

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FallbackContent generates content from a fixed offline template for the
// requested content type. Fully deterministic for identical inputs except
// the embedded date; no network access.
func FallbackContent(req Request, now time.Time) string {
	topic := req.Topic
	topicTitle := titleCaser.String(topic)
	tone := req.Tone
	toneTitle := titleCaser.String(tone)
	today := now.Format("January 02, 2006")

	keywordText := "this topic"
	if len(req.Keywords) > 0 {
		head := req.Keywords
		if len(head) > 3 {
			head = head[:3]
		}
		keywordText = strings.Join(head, ", ")
	}

	switch req.ContentType {
	case "article":
		return fmt.Sprintf(`# Comprehensive Analysis: %s

*%s | %s Analysis*

## Executive Summary

This %s article examines %s in detail, with special emphasis on %s. Our analysis
provides valuable insights for professionals and enthusiasts alike.

## Background

%s has evolved significantly over time, becoming an essential element in modern contexts.
Understanding its origins helps appreciate its current applications.

## Key Findings

1. **Market Impact**
   - Statistical trends show growing interest in %s
   - Industry leaders are investing heavily in related technologies
   - Consumer adoption continues to accelerate

2. **Technical Considerations**
   - Implementation requires careful planning
   - Integration with existing systems presents challenges
   - Optimization techniques can significantly improve outcomes

3. **Future Outlook**
   - Predictions indicate continued growth
   - Emerging technologies will enhance capabilities
   - New applications are being discovered regularly

## Recommendations

Based on our analysis of %s, we recommend focusing on %s to maximize
value and efficiency.

*This is sample content generated in demo mode.*
`, topicTitle, today, toneTitle, tone, topic, keywordText, topic, topic, topic, keywordText)

	case "social":
		platform := req.Platform
		if platform == "" {
			platform = "social media"
		}
		platformTitle := titleCaser.String(platform)
		topicTag := strings.ReplaceAll(topic, " ", "")
		keywordTag := strings.ReplaceAll(strings.ReplaceAll(keywordText, ", ", " #"), " ", "")
		keywordRun := strings.ReplaceAll(strings.ReplaceAll(keywordText, ", ", ""), " ", "")
		return fmt.Sprintf(`# %s Posts about %s

## Post 1:
📣 Just discovered some amazing insights about %s! Learning about %s has completely
changed my perspective. What's your experience with this?
#Learn#%s #%s
#Professional%s

## Post 2:
Today's deep dive: %s 🔍
Three things I never knew:
✅ It improves efficiency by up to 40%%
✅ Industry leaders are rapidly adopting it
✅ It works perfectly with %s
Who else is exploring this? Let me know below!
#%sExplained #%sThoughts

## Post 3:
🚀 BREAKING: New developments in %s are changing everything we thought we knew!
Particularly how it relates to %s. Check out my latest article (link in bio)
for a %s breakdown of what this means for you.
#Innovation #%s #Future#%s

*These sample posts were generated in demo mode.*
`, platformTitle, topicTitle, topic, keywordText, topicTag, keywordTag, toneTitle,
			topic, keywordText, topicTag, toneTitle,
			topic, keywordText, tone, topicTag, keywordRun)

	case "youtube":
		return fmt.Sprintf(`# YouTube Content: %s

## TITLE:
%s: The Ultimate %s Guide You Need To See

## DESCRIPTION:
In this %s video, we explore everything you need to know about %s. We cover %s
and provide practical insights you can apply immediately.

🔔 SUBSCRIBE for more content on %s and related subjects!
👍 LIKE this video if you found it helpful
💬 COMMENT with your questions or experiences with %s

## TIMESTAMPS:
0:00 Introduction
1:45 What is %s?
4:30 The importance of %s
8:15 Practical applications
12:40 Common mistakes to avoid
16:20 Case studies and examples
21:00 Summary and recommendations

## SCRIPT OUTLINE:

### Introduction
- Welcome viewers and introduce the topic
- Explain why %s matters in today's context
- Set expectations for what will be covered

### Main Content
- Define %s in clear, %s terms
- Discuss the history and evolution of %s
- Explain the significance of %s
- Demonstrate practical applications with visual examples
- Address common misconceptions and mistakes
- Share successful case studies

### Conclusion
- Summarize key points about %s
- Provide actionable next steps for viewers
- Invite engagement through comments and questions

## THUMBNAIL DESCRIPTION:
Create an eye-catching thumbnail featuring bold text "%s" with a surprised reaction face.
Use contrasting colors with arrows pointing to key visual elements related to %s.

*This sample YouTube content was generated in demo mode.*
`, topicTitle, topicTitle, toneTitle, tone, topic, keywordText, topic, topic,
			topic, keywordText, topic, topic, tone, topic, keywordText, topic,
			strings.ToUpper(topic), keywordText)

	case "email":
		return fmt.Sprintf(`# Email Campaign: %s

## SUBJECT LINE:
%s: Discover How %s Can Transform Your Results

## EMAIL BODY:

Dear [Recipient Name],

I hope this %s message finds you well.

I wanted to share some valuable insights about %s that our team has recently discovered. As someone interested in [recipient's industry], you'll find these particularly relevant.

### Why %s Matters Now

In today's rapidly evolving landscape, understanding %s has become more crucial than ever. Our research indicates that organizations focusing on %s are seeing remarkable improvements in their outcomes.

### Key Benefits:

1. **Increased Efficiency**: Implement %s strategies to streamline your processes
2. **Better Results**: Our clients report 35%% better outcomes when applying these principles
3. **Competitive Edge**: Stay ahead by mastering %s

### Next Steps

I'd be delighted to schedule a brief call to discuss how these concepts apply specifically to your situation. Alternatively, you can access our free resource guide here: [LINK]

Looking forward to your thoughts on this.

Best regards,
[Your Name]
[Your Position]
[Contact Information]

*This sample email was generated in demo mode.*
`, topicTitle, topicTitle, titleCaser.String(keywordText), tone, topic, topic,
			topic, keywordText, topic, keywordText)

	default: // blog
		return fmt.Sprintf(`# %s: A %s Perspective

*Published on %s*

## Introduction

Welcome to this %s blog post about %s. In this article, we'll explore various aspects
of %s and provide useful insights about %s.

## Main Points

1. **Understanding %s**
   - Key concepts and fundamentals
   - Historical background and development
   - Current trends and innovations

2. **Practical Applications**
   - How %s is used in real-world scenarios
   - Case studies and success stories
   - Implementation strategies

3. **Benefits and Advantages**
   - Why %s matters in today's context
   - Comparative advantages over alternatives
   - Long-term value and potential

## Conclusion

%s offers significant opportunities for those who understand its importance. By focusing on %s,
you can leverage these concepts for better outcomes.

*This is sample content generated in demo mode.*
`, topicTitle, toneTitle, today, tone, topic, topic, keywordText, topic,
			topic, topic, topic, keywordText)
	}
}

// Package content serves the static advisory content bundled with the app:
// farming tips, help-center FAQs and the support contact block.
package content

import "github.com/kisanseva/kisanseva/internal/domain/models"

var farmingTips = []models.Tip{
	{
		Title:       "मिट्टी की सेहत",
		Description: "मिट्टी का नियमित परीक्षण करें और जैविक खाद का उपयोग करें ताकि मिट्टी की सेहत बनी रहे। फसल बदलने से मिट्टी में पोषक तत्वों का संतुलन रहता है।",
	},
	{
		Title:       "सिंचाई (Irrigation)",
		Description: "पानी की बचत के लिए ड्रिप सिंचाई का इस्तेमाल करें। बारिश के पानी को इकट्ठा करें और इससे सिंचाई करें।",
	},
	{
		Title:       "कीट नियंत्रण",
		Description: "कीटनाशकों के बजाय नीम के तेल और अन्य जैविक कीटनाशकों का इस्तेमाल करें। प्राकृतिक शिकारियों का उपयोग करें।",
	},
	{
		Title:       "बीज का चयन",
		Description: "हमेशा उच्च गुणवत्ता वाले बीज का चयन करें। स्थानीय प्रकार के बीजों का उपयोग करें, क्योंकि ये उस क्षेत्र की जलवायु के अनुकूल होते हैं।",
	},
	{
		Title:       "उर्वरक (Fertilization)",
		Description: "नाइट्रोजन, फास्फोरस और पोटाश का संतुलित उपयोग करें। जैविक खाद का उपयोग करके मिट्टी में पोषक तत्वों का स्तर बनाए रखें।",
	},
	{
		Title:       "मौसम का ध्यान रखें",
		Description: "कृषि कार्यों के लिए मौसम का ध्यान रखें और सही समय पर फसल की बुवाई और कटाई करें। जलवायु परिवर्तन के अनुसार खेती करें।",
	},
}

var helpFAQs = []models.FAQ{
	{
		Question: "कैसे फसल की बुवाई शुरू करें?",
		Answer:   "आपको पहले उचित बीज का चयन करना चाहिए, फिर खेत की तैयारी करनी चाहिए, और अंत में बुवाई करनी चाहिए। बुवाई के लिए सही समय का चयन करें।",
	},
	{
		Question: "कीटनाशक का उपयोग कैसे करें?",
		Answer:   "प्राकृतिक कीटनाशकों का उपयोग करें जैसे नीम का तेल और तंबाकू का अर्क। रासायनिक कीटनाशकों का प्रयोग बहुत कम करें और प्राकृतिक उपायों को प्राथमिकता दें।",
	},
	{
		Question: "फसल में पानी की कितनी आवश्यकता होती है?",
		Answer:   "विभिन्न फसलों को अलग-अलग मात्रा में पानी की आवश्यकता होती है। सिंचाई के लिए ड्रिप सिस्टम का उपयोग करें ताकि पानी की बचत हो सके।",
	},
}

var supportContact = models.ContactInfo{
	Phone:   "1800-123-4567",
	Email:   "support@kisanseva.com",
	Website: "www.kisanseva.com",
}

// Tips returns the farming tips list.
func Tips() []models.Tip {
	return farmingTips
}

// FAQs returns the help-center questions.
func FAQs() []models.FAQ {
	return helpFAQs
}

// Contact returns the support contact block.
func Contact() models.ContactInfo {
	return supportContact
}
